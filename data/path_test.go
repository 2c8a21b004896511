package data

import (
	"strings"
	"testing"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		base, target string
		expected     string
	}{
		{"/", "", "/"},
		{"/blog", "", "/blog"},
		{"/blog", ".", "/blog"},
		{"/blog", "..", "/"},
		{"/", "..", "/"},
		{"/", "../../..", "/"},
		{"/blog/post", "../../cv", "/cv"},
		{"/blog", "/cv", "/cv"},
		{"/blog", "~", "/"},
		{"/blog", "~/cv/", "/cv"},
		{"/blog", "./././post", "/blog/post"},
		{"/blog", "post//nav.rs", "/blog/post/nav.rs"},
		{"/blog", "post/./../post/", "/blog/post"},
		{"/blog", "./", "/blog"},
	}

	for _, tc := range tests {
		t.Run(tc.base+"+"+tc.target, func(t *testing.T) {
			if got := ResolvePath(tc.base, tc.target); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestResolvePath_Properties(t *testing.T) {
	bases := []string{"/", "/blog", "/blog/post", "/a/b/c"}
	targets := []string{"", ".", "..", "../..", "../../../../..", "x/../y", "/abs/./path/", "~/z", "./a//b/"}

	for _, base := range bases {
		for _, target := range targets {
			resolved := ResolvePath(base, target)

			if !strings.HasPrefix(resolved, "/") {
				t.Errorf("resolve(%q, %q) = %q is not absolute", base, target, resolved)
			}
			if again := ResolvePath(resolved, ""); again != resolved {
				t.Errorf("resolve is not idempotent for %q: %q != %q", resolved, again, resolved)
			}
			if dot := ResolvePath(resolved, "."); dot != resolved {
				t.Errorf("resolve(%q, \".\") = %q", resolved, dot)
			}
			if strings.Contains(resolved, "//") || strings.Contains(resolved, "/..") {
				t.Errorf("resolve(%q, %q) = %q is not canonical", base, target, resolved)
			}
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := map[string][2]string{
		"file.txt":      {"", "file.txt"},
		"dir/file.txt":  {"dir", "file.txt"},
		"/file.txt":     {"/", "file.txt"},
		"/a/b/c":        {"/a/b", "c"},
		"dir/":          {"", "dir"},
		"/":             {"/", ""},
		"":              {"", ""},
		"../x/new.txt/": {"../x", "new.txt"},
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			parent, name := SplitPath(input)
			if parent != expected[0] || name != expected[1] {
				t.Errorf("expected (%q, %q), got (%q, %q)", expected[0], expected[1], parent, name)
			}
		})
	}
}

func TestPermissions_Mode(t *testing.T) {
	tests := map[string]struct {
		perms    Permissions
		nodeType NodeType
		expected string
	}{
		"default file":  {DefaultPermissions(), NodeTypeFile, "-rw-rw-rw-"},
		"read only":     {ReadOnlyPermissions(), NodeTypeFile, "-r--r--r--"},
		"executable":    {ExecutablePermissions(), NodeTypeFile, "-r-xr-xr-x"},
		"system dir":    {SystemDirPermissions(), NodeTypeDirectory, "drwxrwxrwx"},
		"user dir":      {DefaultPermissions(), NodeTypeDirectory, "drw-rw-rw-"},
		"link":          {DefaultPermissions(), NodeTypeLink, "lrw-rw-rw-"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.perms.Mode(tc.nodeType); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestFileContent(t *testing.T) {
	nav := NavContent("")
	if nav.Target != "/" || nav.Size() != NavFileSize || !nav.IsNav() {
		t.Errorf("unexpected nav content %+v", nav)
	}
	if !strings.Contains(nav.Render(), `navigate("/", UseNavigateOptions::default);`) {
		t.Errorf("unexpected nav render %q", nav.Render())
	}

	text := DynamicContent("hello")
	if text.Size() != 5 || text.Render() != "hello" {
		t.Errorf("unexpected dynamic content %+v", text)
	}
}
