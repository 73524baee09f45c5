package browse

import "testing"

func TestPathDescendAscend(t *testing.T) {
	var p Path
	if !p.IsRoot() {
		t.Fatal("nil path must be root")
	}
	p = p.Descend("alpha")
	if p.String() != "alpha/" {
		t.Errorf("expected alpha/, got %q", p.String())
	}
	p = p.Descend("sub/")
	if p.String() != "alpha/sub/" {
		t.Errorf("expected alpha/sub/, got %q", p.String())
	}
	if p.Container() != "alpha" || p.Prefix() != "sub/" {
		t.Errorf("unexpected container %q prefix %q", p.Container(), p.Prefix())
	}

	p = p.Ascend()
	if p.String() != "alpha/" {
		t.Errorf("expected alpha/ after ascend, got %q", p.String())
	}
	p = p.Ascend()
	if !p.IsRoot() {
		t.Errorf("expected root after ascending single-segment path, got %q", p.String())
	}
	if p.Ascend() != nil {
		t.Error("ascending the root must stay at the root")
	}
}

func TestPathDescendDoesNotAliasParent(t *testing.T) {
	base := Path{"alpha"}
	a := base.Descend("one/")
	b := base.Descend("two/")
	if a[1] == b[1] {
		t.Fatalf("descend results alias each other: %v %v", a, b)
	}
	if base.String() != "alpha/" {
		t.Errorf("base path mutated: %q", base.String())
	}
}

func TestPathPrefixConcatenation(t *testing.T) {
	p := Path{"bucket", "folder/", "sub/"}
	if p.Prefix() != "folder/sub/" {
		t.Errorf("expected folder/sub/, got %q", p.Prefix())
	}
	if p.String() != "bucket/folder/sub/" {
		t.Errorf("expected bucket/folder/sub/, got %q", p.String())
	}
}
