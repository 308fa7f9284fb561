//go:build !windows

package docstash

import "testing"

func TestPleasantPath(t *testing.T) {
	type args struct {
		absolute string
		root     string
		wd       string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "NextToFileInRoot", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/my/docs"}, want: "./file.txt"},
		{name: "FileInRootFromSub", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/my/docs/sub"}, want: "../file.txt"},
		{name: "FileInRootFromDeep", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/my/docs/sub/deep"}, want: "../../file.txt"},
		{name: "RootItselfFromRoot", args: args{absolute: "/my/docs", root: "/my/docs", wd: "/my/docs"}, want: "."},
		{name: "OutsideRoot", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/"}, want: "local://file.txt"},
		{name: "BarelyOutsideRoot", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/my"}, want: "local://file.txt"},
		{name: "SiblingWithCommonPrefix", args: args{absolute: "/my/docs/file.txt", root: "/my/docs", wd: "/my/docs2"}, want: "local://file.txt"},
		{name: "RootItselfFromOutside", args: args{absolute: "/my/docs", root: "/my/docs", wd: "/"}, want: "local://"},
		{name: "TargetOutsideRoot_1", args: args{absolute: "/etc/hosts", root: "/my/docs", wd: "/my/docs"}, want: "/etc/hosts"},
		{name: "TargetOutsideRoot_2", args: args{absolute: "/my/docs2/file.txt", root: "/my/docs", wd: "/"}, want: "/my/docs2/file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pleasantPath(tt.args.absolute, tt.args.root, "local://", tt.args.wd); got != tt.want {
				t.Errorf("pleasantPath() = %v, want %v", got, tt.want)
			}
		})
	}
}
