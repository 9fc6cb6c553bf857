package internal

import "strings"

// Template part names accepted by View.Part.
const (
	PartTable   = "table"
	PartThead   = "thead"
	PartTbody   = "tbody"
	PartShow    = "show"
	PartEdit    = "edit"
	PartDestroy = "destroy"
	PartResults = "results"
	PartTfoot   = "tfoot"
)

// TableTemplate sets the template of the whole table.
func (t *Table) TableTemplate(name string) *Table {
	setTemplate(&t.templates.Table, name)
	return t
}

// TheadTemplate sets the template of the table head.
func (t *Table) TheadTemplate(name string) *Table {
	setTemplate(&t.templates.Thead, name)
	return t
}

// TbodyTemplate sets the template of the table body.
func (t *Table) TbodyTemplate(name string) *Table {
	setTemplate(&t.templates.Tbody, name)
	return t
}

// ShowTemplate sets the template of the show action.
func (t *Table) ShowTemplate(name string) *Table {
	setTemplate(&t.templates.Show, name)
	return t
}

// EditTemplate sets the template of the edit action.
func (t *Table) EditTemplate(name string) *Table {
	setTemplate(&t.templates.Edit, name)
	return t
}

// DestroyTemplate sets the template of the destroy action.
func (t *Table) DestroyTemplate(name string) *Table {
	setTemplate(&t.templates.Destroy, name)
	return t
}

// ResultsTemplate sets the template of the result lines.
func (t *Table) ResultsTemplate(name string) *Table {
	setTemplate(&t.templates.Results, name)
	return t
}

// TfootTemplate sets the template of the table foot.
func (t *Table) TfootTemplate(name string) *Table {
	setTemplate(&t.templates.Tfoot, name)
	return t
}

// Templates returns the current template names.
func (t *Table) Templates() Templates {
	return t.templates
}

// Template returns the template name of a part.
func (t Templates) Template(part string) (string, bool) {
	switch part {
	case PartTable:
		return t.Table, true
	case PartThead:
		return t.Thead, true
	case PartTbody:
		return t.Tbody, true
	case PartShow:
		return t.Show, true
	case PartEdit:
		return t.Edit, true
	case PartDestroy:
		return t.Destroy, true
	case PartResults:
		return t.Results, true
	case PartTfoot:
		return t.Tfoot, true
	default:
		return "", false
	}
}

func setTemplate(field *string, name string) {
	if name = strings.TrimSpace(name); name != "" {
		*field = name
	}
}
