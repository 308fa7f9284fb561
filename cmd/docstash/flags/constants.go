package flags

const Verbose = `verbose`
const VerboseShort = `v`
const Quiet = `quiet`
const QuietShort = `q`
const Plain = `plain`
const Config = `config`
const ForceCloud = `cloud`
const ForceLocal = `local`
const PathInCache = `cache`
const ListOrder = `by`
const ListMatching = `match`
const ListAsTree = `tree`
const NewWithoutConfirmation = `yes`
const NewWithoutConfirmationShort = `y`
