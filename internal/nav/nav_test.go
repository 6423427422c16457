package nav

import "testing"

func TestBuildMarksActiveItem(t *testing.T) {
	items := Build("/cart")
	if len(items) != len(Main) {
		t.Fatalf("expected %d items, got %d", len(Main), len(items))
	}
	for _, it := range items {
		want := it.Href == "/cart"
		if it.Active != want {
			t.Fatalf("item %q active=%v, want %v", it.Href, it.Active, want)
		}
	}
}

func TestBuildProductPathActivatesHome(t *testing.T) {
	items := Build("/product")
	if !items[0].Active {
		t.Fatalf("expected home active on product page")
	}
	if items[1].Active {
		t.Fatalf("expected cart inactive on product page")
	}
}

func TestBuildEmptyPathDefaultsToRoot(t *testing.T) {
	items := Build("")
	if !items[0].Active {
		t.Fatalf("expected home active for empty path")
	}
}
