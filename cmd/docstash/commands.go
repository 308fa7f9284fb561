package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/n2code/docstash"
	"github.com/n2code/docstash/cmd/docstash/flags"
	"github.com/n2code/docstash/internal/catalog"
	"github.com/n2code/docstash/internal/output"
)

const defaultProposal = "Untitled"
const maxCreateAttempts = 10

func newWhereCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show the folder that currently holds the documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := s.stash.ActiveRoot()
			path, ok := root.Path()
			if !ok {
				return s.fail("No %s documents folder available", root.Wanted())
			}
			s.printer.Out(output.Normal, "%s ", s.printer.Dim(root.Kind().String()+":"))
			s.printer.Out(output.Required, "%s\n", path)
			return nil
		},
	}
}

func newPathCommand(s *session) *cobra.Command {
	var inCache bool
	cmd := &cobra.Command{
		Use:   "path NAME",
		Short: "Print the file path of a document (it does not need to exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathOf := s.stash.PersistentPath
			if inCache {
				pathOf = s.stash.CachePath
			}
			path, ok := pathOf(args[0])
			if !ok {
				return s.fail("No path for %q: invalid name or no documents folder available", args[0])
			}
			s.printer.Out(output.Required, "%s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&inCache, flags.PathInCache, false, "path inside the cache directory instead of the documents folder")
	return cmd
}

func newListCommand(s *session) *cobra.Command {
	var by, pattern string
	var asTree bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := catalog.ParseSortOrder(by)
			if err != nil {
				return err
			}
			entries := s.stash.Entries(order)
			if pattern != "" {
				matching, err := s.stash.ListMatching(order, pattern)
				if err != nil {
					return err
				}
				entries = onlyFileNames(entries, matching)
			}
			if asTree {
				s.printer.Out(output.Required, "%s", s.renderTree(entries, order))
			} else {
				for _, entry := range entries {
					s.printer.Out(output.Required, "%s\n", entry.FileName)
				}
			}
			if s.printer.Enabled(output.Verbose) {
				s.printer.Out(output.Verbose, "%s\n", s.printer.Dim(listSummary(entries)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, flags.ListOrder, catalog.ByName.String(), "sort order: name or modified (newest first)")
	cmd.Flags().StringVar(&pattern, flags.ListMatching, "", "only list file names matching the glob pattern, e.g. 'Note*'")
	cmd.Flags().BoolVar(&asTree, flags.ListAsTree, false, "render as tree, grouped by month when sorted by modification")
	return cmd
}

func onlyFileNames(entries []docstash.Entry, fileNames []string) []docstash.Entry {
	keep := make(map[string]bool, len(fileNames))
	for _, fileName := range fileNames {
		keep[fileName] = true
	}
	kept := make([]docstash.Entry, 0, len(fileNames))
	for _, entry := range entries {
		if keep[entry.FileName] {
			kept = append(kept, entry)
		}
	}
	return kept
}

func listSummary(entries []docstash.Entry) string {
	if len(entries) == 0 {
		return "no documents"
	}
	var total int64
	for _, entry := range entries {
		total += entry.Size
	}
	return fmt.Sprintf("%d %s, %s", len(entries), output.Plural(entries, "document", "documents"), output.Filesize(total))
}

// renderTree nests documents below year and month of their last modification when sorted by it.
func (s *session) renderTree(entries []docstash.Entry, order docstash.SortOrder) string {
	label := "(unavailable)"
	if path, ok := s.stash.ActiveRoot().Path(); ok {
		label = s.stash.DisplayPath(path)
	}
	tree := output.NewVisualFileTree(label)
	for _, entry := range entries {
		leaf := entry.FileName
		if order == docstash.ByModificationTimeDescending {
			group := output.Unknown
			if entry.HasModified {
				group = filepath.Join(entry.Modified.Local().Format("2006"), entry.Modified.Local().Format("01"))
			}
			leaf = filepath.Join(group, leaf)
		}
		tree.InsertPath(leaf)
	}
	return tree.Render()
}

func newAvailableCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "available NAME",
		Short: "Check whether a document name is still free and propose the next free one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposed := args[0]
			free, err := s.stash.AvailableName(proposed)
			if err != nil {
				return err
			}
			if free == proposed {
				s.printer.Out(output.Normal, "%q is available\n", proposed)
				return nil
			}
			s.printer.Out(output.Normal, "%q is taken, next free name: ", proposed)
			s.printer.Out(output.Required, "%s\n", free)
			return nil
		},
	}
}

func newInfoCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show the metadata of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			path, ok := s.stash.PersistentPath(name)
			if !ok {
				return s.fail("No path for %q: invalid name or no documents folder available", name)
			}
			modified, exists := s.stash.ModificationDate(name)
			if !exists {
				return s.fail("Document %q not found at %s", name, s.stash.DisplayPath(path))
			}
			created, createdKnown := s.stash.CreationDate(name)
			size, sizeKnown := s.stash.Size(name)
			sizeText := output.Unknown
			if sizeKnown {
				sizeText = output.Filesize(size)
			}
			contentType, typeKnown := s.stash.ContentType(name)
			if !typeKnown {
				contentType = output.Unknown
			}

			s.printer.Out(output.Required, "%s\n", s.printer.Bold(s.stash.DisplayPath(path)))
			var record strings.Builder
			record.WriteString(output.Field("created", output.Timestamp(created, createdKnown)))
			record.WriteString(output.Field("modified", output.Timestamp(modified, true)))
			record.WriteString(output.Field("size", sizeText))
			record.WriteString(output.Field("type", contentType))
			s.printer.Out(output.Required, "%s\n", output.Indent(2, strings.TrimSuffix(record.String(), "\n")))
			return nil
		},
	}
}

func newNewCommand(s *session) *cobra.Command {
	var skipConfirmation bool
	cmd := &cobra.Command{
		Use:   "new [NAME]",
		Short: "Create an empty document under a free name (default \"" + defaultProposal + "\")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposal := defaultProposal
			if len(args) == 1 {
				proposal = args[0]
			}
			s.choose = PromptUser(s.printer.Escapes())
			if skipConfirmation {
				s.choose = AutoChooseDefaultOption(s.out, s.quiet)
			}
			return s.createDocument(proposal)
		},
	}
	cmd.Flags().BoolVarP(&skipConfirmation, flags.NewWithoutConfirmation, flags.NewWithoutConfirmationShort, false, "do not ask for confirmation")
	return cmd
}

// createDocument claims the file exclusively, a name taken in the meantime by another process leads to a fresh allocation.
func (s *session) createDocument(proposal string) error {
	confirmed := "" //path the user agreed to, a different name needs a new confirmation
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		name, err := s.stash.AvailableName(proposal)
		if err != nil {
			return err
		}
		path, ok := s.stash.PersistentPath(name)
		if !ok {
			return s.fail("No %s documents folder available", s.stash.ActiveRoot().Wanted())
		}
		if path != confirmed {
			if confirmed != "" {
				s.printer.Out(output.Normal, "%s was taken in the meantime\n", s.stash.DisplayPath(confirmed))
			}
			switch s.choose("Create "+s.stash.DisplayPath(path)+"?", []string{"yes", "no"}, false) {
			case "yes":
				confirmed = path
			case ChoiceAborted:
				return s.fail("Aborted")
			default:
				s.printer.Out(output.Normal, "Nothing created\n")
				return nil
			}
		}

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			s.logger.Debug("name claimed concurrently, allocating again", zap.String("name", name), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		s.printer.Out(output.Normal, "Created ")
		s.printer.Out(output.Required, "%s\n", name)
		s.printer.Out(output.Verbose, "%s\n", s.printer.Dim(path))
		return nil
	}
	return s.fail("Could not claim a free name for %q after %d attempts", proposal, maxCreateAttempts)
}
