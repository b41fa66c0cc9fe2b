package diag

import "testing"

func TestExpectedGot(t *testing.T) {
	details := ExpectedGot("uint32", "uint16")
	if len(details) != 2 {
		t.Fatalf("len = %d; want 2", len(details))
	}
	if details[0] != (Detail{Key: DetailKeyExpected, Value: "uint32"}) {
		t.Errorf("details[0] = %v", details[0])
	}
	if details[1] != (Detail{Key: DetailKeyGot, Value: "uint16"}) {
		t.Errorf("details[1] = %v", details[1])
	}
}

func TestKindName(t *testing.T) {
	details := KindName("structure", "point3d_t")
	if details[0] != (Detail{Key: DetailKeyKind, Value: "structure"}) {
		t.Errorf("details[0] = %v", details[0])
	}
	if details[1] != (Detail{Key: DetailKeyName, Value: "point3d_t"}) {
		t.Errorf("details[1] = %v", details[1])
	}
}

func TestNameMember(t *testing.T) {
	details := NameMember("sphere3d_t", "radius")
	if details[0] != (Detail{Key: DetailKeyName, Value: "sphere3d_t"}) {
		t.Errorf("details[0] = %v", details[0])
	}
	if details[1] != (Detail{Key: DetailKeyMember, Value: "radius"}) {
		t.Errorf("details[1] = %v", details[1])
	}
}
