package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return cat
}

func TestLoad_EmbeddedCatalogIsValid(t *testing.T) {
	cat := mustLoad(t)

	var ids []string
	for _, c := range cat.Categories() {
		ids = append(ids, c.ID)
	}
	want := []string{CategoryUI, CategoryState, CategoryCommon}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("category order = %v, want %v", ids, want)
	}
}

func TestLoad_ChoiceOrder(t *testing.T) {
	cat := mustLoad(t)

	tests := []struct {
		id   string
		want []string
	}{
		{CategoryUI, []string{"MUI", "Chakra UI", "Ant Design", "None", "Bootstrap", "Semantic UI React", "Tailwind CSS", "Blueprint", "Evergreen"}},
		{CategoryState, []string{"Redux", "Zustand", "Recoil", "MobX", "None", "XState", "Jotai", "React Query", "Apollo Client"}},
		{CategoryCommon, []string{"axios", "react-router-dom", "lodash", "None", "moment", "react-hook-form", "formik", "yup", "classnames"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, ok := cat.Category(tt.id)
			if !ok {
				t.Fatalf("category %q not found", tt.id)
			}
			var got []string
			for _, ch := range c.Choices {
				got = append(got, ch.Value)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("choices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryResolve(t *testing.T) {
	cat := mustLoad(t)
	ui, _ := cat.Category(CategoryUI)
	state, _ := cat.Category(CategoryState)
	common, _ := cat.Category(CategoryCommon)

	tests := []struct {
		name     string
		category *Category
		selected []string
		want     []Package
	}{
		{
			name:     "mui",
			category: ui,
			selected: []string{"MUI"},
			want: []Package{
				{Name: "@mui/material", Version: "^5.14.11"},
				{Name: "@emotion/react", Version: "^11.11.1"},
				{Name: "@emotion/styled", Version: "^11.11.0"},
			},
		},
		{
			name:     "redux",
			category: state,
			selected: []string{"Redux"},
			want: []Package{
				{Name: "redux", Version: "^4.2.1"},
				{Name: "react-redux", Version: "^8.1.1"},
			},
		},
		{
			name:     "none_alone",
			category: ui,
			selected: []string{"None"},
			want:     nil,
		},
		{
			name:     "none_suppresses_others",
			category: state,
			selected: []string{"Redux", "None", "Zustand"},
			want:     nil,
		},
		{
			name:     "empty",
			category: common,
			selected: nil,
			want:     nil,
		},
		{
			name:     "choice_without_packages",
			category: ui,
			selected: []string{"Blueprint", "Evergreen"},
			want:     nil,
		},
		{
			name:     "unknown_value_ignored",
			category: common,
			selected: []string{"left-pad", "axios"},
			want:     []Package{{Name: "axios", Version: "^1.7.4"}},
		},
		{
			name:     "shared_packages_deduplicated",
			category: ui,
			selected: []string{"MUI", "Chakra UI"},
			want: []Package{
				{Name: "@mui/material", Version: "^5.14.11"},
				{Name: "@emotion/react", Version: "^11.11.1"},
				{Name: "@emotion/styled", Version: "^11.11.0"},
				{Name: "@chakra-ui/react", Version: "^2.7.2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.category.Resolve(tt.selected)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestResolveAll(t *testing.T) {
	cat := mustLoad(t)

	got, err := cat.ResolveAll(Selections{
		CategoryCommon: {"lodash"},
		CategoryUI:     {"Ant Design"},
		CategoryState:  {"None"},
	})
	if err != nil {
		t.Fatalf("ResolveAll error: %v", err)
	}
	want := []Package{
		{Name: "antd", Version: "^5.9.1"},
		{Name: "lodash", Version: "^4.17.21"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveAll = %v, want %v", got, want)
	}
}

func TestResolveAll_UnknownCategory(t *testing.T) {
	cat := mustLoad(t)

	_, err := cat.ResolveAll(Selections{"testing": {"jest"}})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "not_yaml",
			doc:     "categories: [",
			wantMsg: "parsing YAML",
		},
		{
			name:    "missing_categories",
			doc:     "title: nope\n",
			wantMsg: "",
		},
		{
			name: "missing_none",
			doc: `categories:
  - id: ui
    title: UI
    choices:
      - { label: MUI, value: MUI }
`,
			wantMsg: "exactly one None",
		},
		{
			name: "bad_version",
			doc: `categories:
  - id: ui
    title: UI
    choices:
      - label: MUI
        value: MUI
        packages:
          - { name: "@mui/material", version: "five" }
      - { label: None, value: None }
`,
			wantMsg: "version",
		},
		{
			name: "duplicate_choice",
			doc: `categories:
  - id: ui
    title: UI
    choices:
      - { label: MUI, value: MUI }
      - { label: MUI again, value: MUI }
      - { label: None, value: None }
`,
			wantMsg: "duplicate choice",
		},
		{
			name: "unknown_field",
			doc: `categories:
  - id: ui
    title: UI
    color: green
    choices:
      - { label: None, value: None }
`,
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("Parse error = %v, want ErrInvalidCatalog", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestChoiceIsNone(t *testing.T) {
	if !(Choice{Value: NoneValue}).IsNone() {
		t.Error("None choice should report IsNone")
	}
	if (Choice{Value: "MUI"}).IsNone() {
		t.Error("MUI choice should not report IsNone")
	}
}
