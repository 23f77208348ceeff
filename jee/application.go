package jee

import "github.com/dhamidi/jeedd/binding"

// Application is the root of an EAR's application.xml.
type Application struct {
	Version         string `json:"version,omitempty"`
	ID              string `json:"id,omitempty"`
	ApplicationName string `json:"applicationName,omitempty"`
	DescriptionGroup
	InitializeInOrder *bool           `json:"initializeInOrder,omitempty"`
	Modules           []*Module       `json:"modules,omitempty"`
	SecurityRoles     []*SecurityRole `json:"securityRoles,omitempty"`
	LibraryDirectory  string          `json:"libraryDirectory,omitempty"`
	JndiEnvironment
	MessageDestinations *binding.Keyed[MessageDestination] `json:"messageDestinations,omitempty"`
}

// Module is one EAR module. Exactly one of Connector, Ejb, Java and Web
// is set in a valid descriptor.
type Module struct {
	ID        string `json:"id,omitempty"`
	Connector string `json:"connector,omitempty"`
	Ejb       string `json:"ejb,omitempty"`
	Java      string `json:"java,omitempty"`
	Web       *Web   `json:"web,omitempty"`
	AltDD     string `json:"altDD,omitempty"`
}

// URI returns the archive path of the module.
func (m *Module) URI() string {
	switch {
	case m.Web != nil:
		return m.Web.WebURI
	case m.Ejb != "":
		return m.Ejb
	case m.Connector != "":
		return m.Connector
	}
	return m.Java
}

type Web struct {
	ID          string `json:"id,omitempty"`
	WebURI      string `json:"webURI"`
	ContextRoot string `json:"contextRoot,omitempty"`
}

var webSchema = binding.NewSchema[Web](typeName("webType"),
	binding.ID(func(w *Web) *string { return &w.ID }),
	binding.Required(binding.Scalar("web-uri", binding.CollapsedString, func(w *Web) *string { return &w.WebURI })),
	binding.Scalar("context-root", binding.CollapsedString, func(w *Web) *string { return &w.ContextRoot }),
)

var moduleSchema = binding.NewSchema[Module](typeName("moduleType"),
	binding.ID(func(m *Module) *string { return &m.ID }),
	binding.Scalar("connector", binding.CollapsedString, func(m *Module) *string { return &m.Connector }),
	binding.Scalar("ejb", binding.CollapsedString, func(m *Module) *string { return &m.Ejb }),
	binding.Scalar("java", binding.CollapsedString, func(m *Module) *string { return &m.Java }),
	binding.One("web", webSchema, func(m *Module) **Web { return &m.Web }),
	binding.Scalar("alt-dd", binding.CollapsedString, func(m *Module) *string { return &m.AltDD }),
)

var applicationSchema = binding.NewSchema[Application](typeName("applicationType"), binding.Fields(
	[]binding.Field[Application]{
		binding.Attr("version", binding.CollapsedString, func(a *Application) *string { return &a.Version }),
		binding.ID(func(a *Application) *string { return &a.ID }),
		binding.Scalar("application-name", binding.CollapsedString, func(a *Application) *string { return &a.ApplicationName }),
	},
	descriptionGroupFields(func(a *Application) *DescriptionGroup { return &a.DescriptionGroup }),
	[]binding.Field[Application]{
		binding.Scalar("initialize-in-order", binding.Boolean, func(a *Application) **bool { return &a.InitializeInOrder }),
		binding.Many("module", moduleSchema, func(a *Application) *[]*Module { return &a.Modules }),
		binding.Many("security-role", securityRoleSchema, func(a *Application) *[]*SecurityRole { return &a.SecurityRoles }),
		binding.Scalar("library-directory", binding.CollapsedString, func(a *Application) *string { return &a.LibraryDirectory }),
	},
	referenceFields(func(a *Application) *JndiEnvironment { return &a.JndiEnvironment }),
	[]binding.Field[Application]{
		binding.Indexed("message-destination", messageDestinationSchema, func(a *Application) **binding.Keyed[MessageDestination] { return &a.MessageDestinations }),
	},
	dataSourceFields(func(a *Application) *JndiEnvironment { return &a.JndiEnvironment }),
)...)
