package parser

import "testing"

func TestParseAddress_FullForm(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("123 Main St, Springfield, IL 62704")
	want := Address{Street: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"}
	if addr != want {
		t.Fatalf("got %+v, want %+v", addr, want)
	}
	if got := addr.Format(); got != "123 Main St, Springfield, IL 62704" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestParseAddress_StateName(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("789 Pine Rd, Dayton Ohio 45402")
	want := Address{Street: "789 Pine Rd", City: "Dayton", State: "OH", Zip: "45402"}
	if addr != want {
		t.Fatalf("got %+v, want %+v", addr, want)
	}
}

func TestParseAddress_Zip9(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("10 Elm St, Austin, TX 78701-4321")
	if addr.Zip != "78701" {
		t.Fatalf("zip = %q, want five digits", addr.Zip)
	}
	if addr.State != "TX" {
		t.Fatalf("state = %q", addr.State)
	}
}

func TestParseAddress_SingleSegment(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("456 Oak Ave")
	want := Address{Street: "456 Oak Ave"}
	if addr != want {
		t.Fatalf("got %+v, want street only", addr)
	}
}

func TestParseAddress_FourSegments(t *testing.T) {
	t.Parallel()

	addr := ParseAddress("Plant 2, 55 Dock Rd, Toledo, OH 43604")
	if addr.Street != "Plant 2" {
		t.Fatalf("street = %q", addr.Street)
	}
	if addr.City != "55 Dock Rd, Toledo" {
		t.Fatalf("city = %q", addr.City)
	}
	if addr.State != "OH" || addr.Zip != "43604" {
		t.Fatalf("state/zip = %q %q", addr.State, addr.Zip)
	}
}

func TestParseAddress_EmptyAndJunk(t *testing.T) {
	t.Parallel()

	if addr := ParseAddress(""); !addr.IsEmpty() {
		t.Fatalf("empty text gave %+v", addr)
	}
	if addr := ParseAddress("  ,  , "); !addr.IsEmpty() {
		t.Fatalf("separator-only text gave %+v", addr)
	}

	addr := ParseAddress("call before arrival")
	if addr.Street != "call before arrival" || addr.State != "" || addr.Zip != "" {
		t.Fatalf("free text gave %+v", addr)
	}
}

func TestAddressFormat_PartialComponents(t *testing.T) {
	t.Parallel()

	addr := Address{City: "Madison", State: "WI"}
	if got := addr.Format(); got != "Madison, WI" {
		t.Fatalf("Format() = %q", got)
	}
	if got := (Address{}).Format(); got != "" {
		t.Fatalf("empty Format() = %q", got)
	}
}
