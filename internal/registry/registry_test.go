package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/twin-golf/internal/golf/level"
)

func testCatalog(id string) level.Catalog {
	return level.Catalog{
		ID:   id,
		Name: strings.ToUpper(id),
		Levels: []level.Def{
			{Name: "one"},
			{Name: "two"},
		},
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-factory", func() level.Catalog { return testCatalog("zz-test-factory") })

	if !Exists("zz-test-factory") {
		t.Fatal("registered course should exist")
	}

	c, err := Create("zz-test-factory")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Create() returned %d levels, expected 2", c.Len())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-test-factory" {
			found = true
			if info.Title != "ZZ-TEST-FACTORY" || info.Levels != 2 {
				t.Errorf("List() info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered course")
	}
}

func TestRegisterCatalogDuplicate(t *testing.T) {
	if err := RegisterCatalog(testCatalog("zz-test-dup")); err != nil {
		t.Fatalf("first RegisterCatalog() failed: %v", err)
	}
	if err := RegisterCatalog(testCatalog("zz-test-dup")); err == nil {
		t.Error("duplicate RegisterCatalog() should fail")
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	Register("zz-test-panic", func() level.Catalog { return testCatalog("zz-test-panic") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz-test-panic", func() level.Catalog { return testCatalog("zz-test-panic") })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-course"); err == nil {
		t.Error("Create() of unknown course should fail")
	}
}

func TestListSorted(t *testing.T) {
	RegisterCatalog(testCatalog("zz-test-b")) //nolint:errcheck
	RegisterCatalog(testCatalog("zz-test-a")) //nolint:errcheck

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}
