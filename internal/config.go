package internal

// Config holds table defaults shared by every table of an application.
// Load it with pkg/config; unset environment variables keep the values of
// DefaultConfig.
type Config struct {
	// RowsNumber is the default number of rows per page. Zero disables pagination.
	RowsNumber int `yaml:"rows_number" env:"TABULA_ROWS_NUMBER"`

	// MaxRowsNumber bounds the rows per page a user can request.
	MaxRowsNumber int `yaml:"max_rows_number" env:"TABULA_MAX_ROWS_NUMBER"`

	RowsNumberSelection bool   `yaml:"rows_number_selection" env:"TABULA_ROWS_NUMBER_SELECTION"`
	HTMX                bool   `yaml:"htmx" env:"TABULA_HTMX"`
	SanitizeHTML        bool   `yaml:"sanitize_html" env:"TABULA_SANITIZE_HTML"`
	Language            string `yaml:"language" env:"TABULA_LANGUAGE"`

	Classes   Classes   `yaml:"classes" envPrefix:"TABULA_CLASSES_"`
	Templates Templates `yaml:"templates" envPrefix:"TABULA_TEMPLATES_"`
	Icons     Icons     `yaml:"icons" envPrefix:"TABULA_ICONS_"`
}

// Classes are the CSS classes applied to table elements.
type Classes struct {
	Container []string `yaml:"container" env:"CONTAINER" envSeparator:" "`
	Table     []string `yaml:"table" env:"TABLE" envSeparator:" "`
	Tr        []string `yaml:"tr" env:"TR" envSeparator:" "`
	Th        []string `yaml:"th" env:"TH" envSeparator:" "`
	Td        []string `yaml:"td" env:"TD" envSeparator:" "`
	Results   []string `yaml:"results" env:"RESULTS" envSeparator:" "`
	Disabled  []string `yaml:"disabled" env:"DISABLED" envSeparator:" "`
}

// Templates are the template names of the table parts.
type Templates struct {
	Table   string `yaml:"table" env:"TABLE"`
	Thead   string `yaml:"thead" env:"THEAD"`
	Tbody   string `yaml:"tbody" env:"TBODY"`
	Show    string `yaml:"show" env:"SHOW"`
	Edit    string `yaml:"edit" env:"EDIT"`
	Destroy string `yaml:"destroy" env:"DESTROY"`
	Results string `yaml:"results" env:"RESULTS"`
	Tfoot   string `yaml:"tfoot" env:"TFOOT"`
}

// Icons are HTML snippets rendered as icons. They are trusted configuration
// and rendered without sanitizing.
type Icons struct {
	RowsNumber string `yaml:"rows_number" env:"ROWS_NUMBER"`
	Sort       string `yaml:"sort" env:"SORT"`
	SortAsc    string `yaml:"sort_asc" env:"SORT_ASC"`
	SortDesc   string `yaml:"sort_desc" env:"SORT_DESC"`
	Search     string `yaml:"search" env:"SEARCH"`
	Validate   string `yaml:"validate" env:"VALIDATE"`
	Info       string `yaml:"info" env:"INFO"`
	Cancel     string `yaml:"cancel" env:"CANCEL"`
	Create     string `yaml:"create" env:"CREATE"`
	Show       string `yaml:"show" env:"SHOW"`
	Edit       string `yaml:"edit" env:"EDIT"`
	Destroy    string `yaml:"destroy" env:"DESTROY"`
}

// DefaultConfig returns the Bootstrap and Font Awesome flavored defaults.
func DefaultConfig() Config {
	return Config{
		RowsNumber:          20,
		MaxRowsNumber:       100,
		RowsNumberSelection: true,
		HTMX:                true,
		SanitizeHTML:        true,
		Language:            "en",
		Classes: Classes{
			Container: []string{"table-responsive"},
			Table:     []string{"table-striped", "table-hover"},
			Th:        []string{"align-middle"},
			Td:        []string{"align-middle"},
			Results:   []string{"table-dark", "font-weight-bold"},
			Disabled:  []string{"table-danger", "disabled"},
		},
		Templates: Templates{
			Table:   "bootstrap/table",
			Thead:   "bootstrap/thead",
			Tbody:   "bootstrap/tbody",
			Show:    "bootstrap/show",
			Edit:    "bootstrap/edit",
			Destroy: "bootstrap/destroy",
			Results: "bootstrap/results",
			Tfoot:   "bootstrap/tfoot",
		},
		Icons: Icons{
			RowsNumber: `<i class="fas fa-list"></i>`,
			Sort:       `<i class="fas fa-sort fa-fw"></i>`,
			SortAsc:    `<i class="fas fa-sort-up fa-fw"></i>`,
			SortDesc:   `<i class="fas fa-sort-down fa-fw"></i>`,
			Search:     `<i class="fas fa-search"></i>`,
			Validate:   `<i class="fas fa-check"></i>`,
			Info:       `<i class="fas fa-info-circle"></i>`,
			Cancel:     `<i class="fas fa-times-circle"></i>`,
			Create:     `<i class="fas fa-plus-circle fa-fw"></i>`,
			Show:       `<i class="fas fa-eye fa-fw"></i>`,
			Edit:       `<i class="fas fa-edit fa-fw"></i>`,
			Destroy:    `<i class="fas fa-trash fa-fw"></i>`,
		},
	}
}

// withDefaults fills zero values a partial configuration left out.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RowsNumber < 0 {
		c.RowsNumber = 0
	}
	if c.MaxRowsNumber <= 0 {
		c.MaxRowsNumber = d.MaxRowsNumber
	}
	if c.Language == "" {
		c.Language = d.Language
	}

	t := &c.Templates
	for _, p := range []struct {
		field *string
		def   string
	}{
		{&t.Table, d.Templates.Table},
		{&t.Thead, d.Templates.Thead},
		{&t.Tbody, d.Templates.Tbody},
		{&t.Show, d.Templates.Show},
		{&t.Edit, d.Templates.Edit},
		{&t.Destroy, d.Templates.Destroy},
		{&t.Results, d.Templates.Results},
		{&t.Tfoot, d.Templates.Tfoot},
	} {
		if *p.field == "" {
			*p.field = p.def
		}
	}
	return c
}
