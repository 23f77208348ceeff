package jee

import "github.com/dhamidi/jeedd/binding"

// OrderingOrdering is the before or after list of a fragment ordering.
type OrderingOrdering struct {
	Names  []string `json:"names,omitempty"`
	Others *Empty   `json:"others,omitempty"`
}

// ContainsOthers reports whether the list holds the others marker.
func (o *OrderingOrdering) ContainsOthers() bool {
	return o != nil && o.Others != nil
}

type Ordering struct {
	After  *OrderingOrdering `json:"after,omitempty"`
	Before *OrderingOrdering `json:"before,omitempty"`
}

// WebFragment is the root of META-INF/web-fragment.xml in a library jar.
type WebFragment struct {
	ID               string `json:"id,omitempty"`
	MetadataComplete *bool  `json:"metadataComplete,omitempty"`
	Version          string `json:"version,omitempty"`
	WebComponents
	Ordering *Ordering `json:"ordering,omitempty"`
	Name     string    `json:"name,omitempty"`
}

var orderingOrderingSchema = binding.NewSchema[OrderingOrdering](typeName("ordering-orderingType"),
	binding.Scalars("name", binding.CollapsedString, func(o *OrderingOrdering) *[]string { return &o.Names }),
	binding.One("others", emptySchema, func(o *OrderingOrdering) **Empty { return &o.Others }),
)

var orderingSchema = binding.NewSchema[Ordering](typeName("orderingType"),
	binding.One("after", orderingOrderingSchema, func(o *Ordering) **OrderingOrdering { return &o.After }),
	binding.One("before", orderingOrderingSchema, func(o *Ordering) **OrderingOrdering { return &o.Before }),
)

var webFragmentSchema = binding.NewSchema[WebFragment](typeName("web-fragmentType"), binding.Fields(
	[]binding.Field[WebFragment]{
		binding.ID(func(w *WebFragment) *string { return &w.ID }),
		binding.Attr("metadata-complete", binding.Boolean, func(w *WebFragment) **bool { return &w.MetadataComplete }),
		binding.Attr("version", binding.CollapsedString, func(w *WebFragment) *string { return &w.Version }),
	},
	webHeadFields(func(w *WebFragment) *WebComponents { return &w.WebComponents }),
	webBodyFields(func(w *WebFragment) *WebComponents { return &w.WebComponents }),
	[]binding.Field[WebFragment]{
		binding.One("ordering", orderingSchema, func(w *WebFragment) **Ordering { return &w.Ordering }),
	},
	dataSourceFields(func(w *WebFragment) *JndiEnvironment { return &w.JndiEnvironment }),
	[]binding.Field[WebFragment]{
		binding.Scalar("name", binding.CollapsedString, func(w *WebFragment) *string { return &w.Name }),
	},
)...)
