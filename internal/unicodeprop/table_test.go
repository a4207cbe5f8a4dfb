package unicodeprop

import "testing"

func TestLookupBinaryProperty(t *testing.T) {
	tbl := Build(2025)
	if _, ok := tbl.Lookup("ASCII", ""); !ok {
		t.Fatal("expected ASCII to be a known binary property")
	}
	if _, ok := tbl.Lookup("ASCII", "Foo"); ok {
		t.Fatal("binary property should reject a value suffix")
	}
}

func TestLookupValuedProperty(t *testing.T) {
	tbl := Build(2025)
	if _, ok := tbl.Lookup("Script", "Greek"); !ok {
		t.Fatal("expected Script=Greek to be known")
	}
	if _, ok := tbl.Lookup("Script", "Klingon"); ok {
		t.Fatal("expected unknown script value to be rejected")
	}
	if _, ok := tbl.Lookup("Script", ""); ok {
		t.Fatal("a value-taking property used without a value should be rejected")
	}
}

func TestEditionGating(t *testing.T) {
	old := Build(2018)
	if _, ok := old.Lookup("Script_Extensions", "Greek"); ok {
		t.Fatal("Script_Extensions should not be available before 2019")
	}
	newer := Build(2019)
	if _, ok := newer.Lookup("Script_Extensions", "Greek"); !ok {
		t.Fatal("Script_Extensions should be available from 2019")
	}
}

func TestPropertiesOfStringsGating(t *testing.T) {
	pre2024 := Build(2023)
	if pre2024.IsStrings("Basic_Emoji") {
		t.Fatal("properties-of-strings should not exist before 2024")
	}
	v2024 := Build(2024)
	if !v2024.IsStrings("Basic_Emoji") {
		t.Fatal("expected Basic_Emoji to be a property-of-strings from 2024")
	}
	if v2024.IsStrings("ASCII") {
		t.Fatal("ASCII is not a property-of-strings")
	}
}

func TestUnknownKey(t *testing.T) {
	tbl := Build(2025)
	if _, ok := tbl.Lookup("NotAProperty", ""); ok {
		t.Fatal("expected unknown key to be rejected")
	}
}
