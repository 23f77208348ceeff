package jee

import (
	"github.com/dhamidi/jeedd/binding"
)

type InjectionTarget struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}

type EnvEntry struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	Type             string             `json:"type,omitempty"`
	Value            string             `json:"value,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
	LookupName       string             `json:"lookupName,omitempty"`
}

func (e *EnvEntry) Key() string { return e.Name }

type EjbRef struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	Type             EjbRefType         `json:"type,omitempty"`
	Home             string             `json:"home,omitempty"`
	Remote           string             `json:"remote,omitempty"`
	EjbLink          string             `json:"ejbLink,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
	LookupName       string             `json:"lookupName,omitempty"`
}

func (r *EjbRef) Key() string { return r.Name }

type EjbLocalRef struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	Type             EjbRefType         `json:"type,omitempty"`
	LocalHome        string             `json:"localHome,omitempty"`
	Local            string             `json:"local,omitempty"`
	EjbLink          string             `json:"ejbLink,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
	LookupName       string             `json:"lookupName,omitempty"`
}

func (r *EjbLocalRef) Key() string { return r.Name }

type PortComponentRef struct {
	ID                       string `json:"id,omitempty"`
	ServiceEndpointInterface string `json:"serviceEndpointInterface"`
	EnableMtom               *bool  `json:"enableMtom,omitempty"`
	MtomThreshold            *int   `json:"mtomThreshold,omitempty"`
	PortComponentLink        string `json:"portComponentLink,omitempty"`
}

type Handler struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	HandlerName  string        `json:"handlerName"`
	HandlerClass string        `json:"handlerClass"`
	InitParams   []*ParamValue `json:"initParams,omitempty"`
	SoapHeaders  []string      `json:"soapHeaders,omitempty"`
	SoapRoles    []string      `json:"soapRoles,omitempty"`
	PortNames    []string      `json:"portNames,omitempty"`
}

type HandlerChain struct {
	ID                 string     `json:"id,omitempty"`
	ServiceNamePattern string     `json:"serviceNamePattern,omitempty"`
	PortNamePattern    string     `json:"portNamePattern,omitempty"`
	ProtocolBindings   []string   `json:"protocolBindings,omitempty"`
	Handlers           []*Handler `json:"handlers,omitempty"`
}

type HandlerChains struct {
	ID     string          `json:"id,omitempty"`
	Chains []*HandlerChain `json:"chains,omitempty"`
}

type ServiceRef struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	Name              string              `json:"name"`
	ServiceInterface  string              `json:"serviceInterface,omitempty"`
	ServiceRefType    string              `json:"serviceRefType,omitempty"`
	WsdlFile          string              `json:"wsdlFile,omitempty"`
	JaxrpcMappingFile string              `json:"jaxrpcMappingFile,omitempty"`
	ServiceQName      string              `json:"serviceQName,omitempty"`
	PortComponentRefs []*PortComponentRef `json:"portComponentRefs,omitempty"`
	Handlers          []*Handler          `json:"handlers,omitempty"`
	HandlerChains     *HandlerChains      `json:"handlerChains,omitempty"`
	MappedName        string              `json:"mappedName,omitempty"`
	InjectionTargets  []*InjectionTarget  `json:"injectionTargets,omitempty"`
	LookupName        string              `json:"lookupName,omitempty"`
}

func (r *ServiceRef) Key() string { return r.Name }

type ResourceRef struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	Type             string             `json:"type,omitempty"`
	Auth             ResAuth            `json:"auth,omitempty"`
	SharingScope     ResSharingScope    `json:"sharingScope,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
	LookupName       string             `json:"lookupName,omitempty"`
}

func (r *ResourceRef) Key() string { return r.Name }

type ResourceEnvRef struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	Type             string             `json:"type,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
	LookupName       string             `json:"lookupName,omitempty"`
}

func (r *ResourceEnvRef) Key() string { return r.Name }

type MessageDestinationRef struct {
	ID               string                  `json:"id,omitempty"`
	Descriptions     []*Text                 `json:"descriptions,omitempty"`
	Name             string                  `json:"name"`
	Type             string                  `json:"type,omitempty"`
	Usage            MessageDestinationUsage `json:"usage,omitempty"`
	Link             string                  `json:"link,omitempty"`
	MappedName       string                  `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget      `json:"injectionTargets,omitempty"`
	LookupName       string                  `json:"lookupName,omitempty"`
}

func (r *MessageDestinationRef) Key() string { return r.Name }

type PersistenceContextRef struct {
	ID               string                 `json:"id,omitempty"`
	Descriptions     []*Text                `json:"descriptions,omitempty"`
	Name             string                 `json:"name"`
	UnitName         string                 `json:"unitName,omitempty"`
	Type             PersistenceContextType `json:"type,omitempty"`
	Properties       []*Property            `json:"properties,omitempty"`
	MappedName       string                 `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget     `json:"injectionTargets,omitempty"`
}

func (r *PersistenceContextRef) Key() string { return r.Name }

type PersistenceUnitRef struct {
	ID               string             `json:"id,omitempty"`
	Descriptions     []*Text            `json:"descriptions,omitempty"`
	Name             string             `json:"name"`
	UnitName         string             `json:"unitName,omitempty"`
	MappedName       string             `json:"mappedName,omitempty"`
	InjectionTargets []*InjectionTarget `json:"injectionTargets,omitempty"`
}

func (r *PersistenceUnitRef) Key() string { return r.Name }

type MessageDestination struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	Name       string `json:"name"`
	MappedName string `json:"mappedName,omitempty"`
	LookupName string `json:"lookupName,omitempty"`
}

func (d *MessageDestination) Key() string { return d.Name }

type LifecycleCallback struct {
	Class  string `json:"class,omitempty"`
	Method string `json:"method"`
}

type DataSource struct {
	ID              string         `json:"id,omitempty"`
	Descriptions    []*Text        `json:"descriptions,omitempty"`
	Name            string         `json:"name"`
	ClassName       string         `json:"className,omitempty"`
	ServerName      string         `json:"serverName,omitempty"`
	PortNumber      *int           `json:"portNumber,omitempty"`
	DatabaseName    string         `json:"databaseName,omitempty"`
	URL             string         `json:"url,omitempty"`
	User            string         `json:"user,omitempty"`
	Password        string         `json:"password,omitempty"`
	Properties      []*Property    `json:"properties,omitempty"`
	LoginTimeout    *int           `json:"loginTimeout,omitempty"`
	Transactional   *bool          `json:"transactional,omitempty"`
	IsolationLevel  IsolationLevel `json:"isolationLevel,omitempty"`
	InitialPoolSize *int           `json:"initialPoolSize,omitempty"`
	MaxPoolSize     *int           `json:"maxPoolSize,omitempty"`
	MinPoolSize     *int           `json:"minPoolSize,omitempty"`
	MaxIdleTime     *int           `json:"maxIdleTime,omitempty"`
	MaxStatements   *int           `json:"maxStatements,omitempty"`
}

func (d *DataSource) Key() string { return d.Name }

// JndiEnvironment holds the environment references shared by components
// and application modules. Reference collections are keyed by reference
// name.
type JndiEnvironment struct {
	EnvEntries             *binding.Keyed[EnvEntry]              `json:"envEntries,omitempty"`
	EjbRefs                *binding.Keyed[EjbRef]                `json:"ejbRefs,omitempty"`
	EjbLocalRefs           *binding.Keyed[EjbLocalRef]           `json:"ejbLocalRefs,omitempty"`
	ServiceRefs            *binding.Keyed[ServiceRef]            `json:"serviceRefs,omitempty"`
	ResourceRefs           *binding.Keyed[ResourceRef]           `json:"resourceRefs,omitempty"`
	ResourceEnvRefs        *binding.Keyed[ResourceEnvRef]        `json:"resourceEnvRefs,omitempty"`
	MessageDestinationRefs *binding.Keyed[MessageDestinationRef] `json:"messageDestinationRefs,omitempty"`
	PersistenceContextRefs *binding.Keyed[PersistenceContextRef] `json:"persistenceContextRefs,omitempty"`
	PersistenceUnitRefs    *binding.Keyed[PersistenceUnitRef]    `json:"persistenceUnitRefs,omitempty"`
	PostConstruct          []*LifecycleCallback                  `json:"postConstruct,omitempty"`
	PreDestroy             []*LifecycleCallback                  `json:"preDestroy,omitempty"`
	DataSources            *binding.Keyed[DataSource]            `json:"dataSources,omitempty"`
}

var injectionTargetSchema = binding.NewSchema[InjectionTarget](typeName("injection-targetType"),
	binding.Required(binding.Scalar("injection-target-class", binding.CollapsedString, func(t *InjectionTarget) *string { return &t.Class })),
	binding.Required(binding.Scalar("injection-target-name", binding.CollapsedString, func(t *InjectionTarget) *string { return &t.Name })),
)

// resourceBaseFields are the trailing elements of every resource reference.
func resourceBaseFields[T any](mapped, lookup func(*T) *string, targets func(*T) *[]*InjectionTarget) []binding.Field[T] {
	fields := []binding.Field[T]{
		binding.Scalar("mapped-name", binding.CollapsedString, mapped),
		binding.Many("injection-target", injectionTargetSchema, targets),
	}
	if lookup != nil {
		fields = append(fields, binding.Scalar("lookup-name", binding.CollapsedString, lookup))
	}
	return fields
}

var envEntrySchema = binding.NewSchema[EnvEntry](typeName("env-entryType"), binding.Fields(
	[]binding.Field[EnvEntry]{binding.ID(func(e *EnvEntry) *string { return &e.ID })},
	descriptionFields(func(e *EnvEntry) *[]*Text { return &e.Descriptions }),
	[]binding.Field[EnvEntry]{
		binding.Required(binding.Scalar("env-entry-name", binding.CollapsedString, func(e *EnvEntry) *string { return &e.Name })),
		binding.Scalar("env-entry-type", binding.CollapsedString, func(e *EnvEntry) *string { return &e.Type }),
		binding.Scalar("env-entry-value", binding.String, func(e *EnvEntry) *string { return &e.Value }),
	},
	resourceBaseFields(
		func(e *EnvEntry) *string { return &e.MappedName },
		func(e *EnvEntry) *string { return &e.LookupName },
		func(e *EnvEntry) *[]*InjectionTarget { return &e.InjectionTargets }),
)...)

var ejbRefSchema = binding.NewSchema[EjbRef](typeName("ejb-refType"), binding.Fields(
	[]binding.Field[EjbRef]{binding.ID(func(r *EjbRef) *string { return &r.ID })},
	descriptionFields(func(r *EjbRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[EjbRef]{
		binding.Required(binding.Scalar("ejb-ref-name", binding.CollapsedString, func(r *EjbRef) *string { return &r.Name })),
		binding.Scalar("ejb-ref-type", ejbRefTypes, func(r *EjbRef) *EjbRefType { return &r.Type }),
		binding.Scalar("home", binding.CollapsedString, func(r *EjbRef) *string { return &r.Home }),
		binding.Scalar("remote", binding.CollapsedString, func(r *EjbRef) *string { return &r.Remote }),
		binding.Scalar("ejb-link", binding.CollapsedString, func(r *EjbRef) *string { return &r.EjbLink }),
	},
	resourceBaseFields(
		func(r *EjbRef) *string { return &r.MappedName },
		func(r *EjbRef) *string { return &r.LookupName },
		func(r *EjbRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var ejbLocalRefSchema = binding.NewSchema[EjbLocalRef](typeName("ejb-local-refType"), binding.Fields(
	[]binding.Field[EjbLocalRef]{binding.ID(func(r *EjbLocalRef) *string { return &r.ID })},
	descriptionFields(func(r *EjbLocalRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[EjbLocalRef]{
		binding.Required(binding.Scalar("ejb-ref-name", binding.CollapsedString, func(r *EjbLocalRef) *string { return &r.Name })),
		binding.Scalar("ejb-ref-type", ejbRefTypes, func(r *EjbLocalRef) *EjbRefType { return &r.Type }),
		binding.Scalar("local-home", binding.CollapsedString, func(r *EjbLocalRef) *string { return &r.LocalHome }),
		binding.Scalar("local", binding.CollapsedString, func(r *EjbLocalRef) *string { return &r.Local }),
		binding.Scalar("ejb-link", binding.CollapsedString, func(r *EjbLocalRef) *string { return &r.EjbLink }),
	},
	resourceBaseFields(
		func(r *EjbLocalRef) *string { return &r.MappedName },
		func(r *EjbLocalRef) *string { return &r.LookupName },
		func(r *EjbLocalRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var portComponentRefSchema = binding.NewSchema[PortComponentRef](typeName("port-component-refType"),
	binding.ID(func(p *PortComponentRef) *string { return &p.ID }),
	binding.Required(binding.Scalar("service-endpoint-interface", binding.CollapsedString, func(p *PortComponentRef) *string { return &p.ServiceEndpointInterface })),
	binding.Scalar("enable-mtom", binding.Boolean, func(p *PortComponentRef) **bool { return &p.EnableMtom }),
	binding.Scalar("mtom-threshold", binding.Int, func(p *PortComponentRef) **int { return &p.MtomThreshold }),
	binding.Scalar("port-component-link", binding.CollapsedString, func(p *PortComponentRef) *string { return &p.PortComponentLink }),
)

var handlerSchema = binding.NewSchema[Handler](typeName("handlerType"), binding.Fields(
	[]binding.Field[Handler]{binding.ID(func(h *Handler) *string { return &h.ID })},
	descriptionGroupFields(func(h *Handler) *DescriptionGroup { return &h.DescriptionGroup }),
	[]binding.Field[Handler]{
		binding.Required(binding.Scalar("handler-name", binding.CollapsedString, func(h *Handler) *string { return &h.HandlerName })),
		binding.Required(binding.Scalar("handler-class", binding.CollapsedString, func(h *Handler) *string { return &h.HandlerClass })),
		binding.Many("init-param", paramValueSchema, func(h *Handler) *[]*ParamValue { return &h.InitParams }),
		binding.Scalars("soap-header", binding.CollapsedString, func(h *Handler) *[]string { return &h.SoapHeaders }),
		binding.Scalars("soap-role", binding.CollapsedString, func(h *Handler) *[]string { return &h.SoapRoles }),
		binding.Scalars("port-name", binding.CollapsedString, func(h *Handler) *[]string { return &h.PortNames }),
	},
)...)

var handlerChainSchema = binding.NewSchema[HandlerChain](typeName("handler-chainType"),
	binding.ID(func(h *HandlerChain) *string { return &h.ID }),
	binding.Scalar("service-name-pattern", binding.CollapsedString, func(h *HandlerChain) *string { return &h.ServiceNamePattern }),
	binding.Scalar("port-name-pattern", binding.CollapsedString, func(h *HandlerChain) *string { return &h.PortNamePattern }),
	binding.Scalars("protocol-bindings", binding.CollapsedString, func(h *HandlerChain) *[]string { return &h.ProtocolBindings }),
	binding.Many("handler", handlerSchema, func(h *HandlerChain) *[]*Handler { return &h.Handlers }),
)

var handlerChainsSchema = binding.NewSchema[HandlerChains](typeName("handler-chainsType"),
	binding.ID(func(h *HandlerChains) *string { return &h.ID }),
	binding.Many("handler-chain", handlerChainSchema, func(h *HandlerChains) *[]*HandlerChain { return &h.Chains }),
)

var serviceRefSchema = binding.NewSchema[ServiceRef](typeName("service-refType"), binding.Fields(
	[]binding.Field[ServiceRef]{binding.ID(func(r *ServiceRef) *string { return &r.ID })},
	descriptionGroupFields(func(r *ServiceRef) *DescriptionGroup { return &r.DescriptionGroup }),
	[]binding.Field[ServiceRef]{
		binding.Required(binding.Scalar("service-ref-name", binding.CollapsedString, func(r *ServiceRef) *string { return &r.Name })),
		binding.Scalar("service-interface", binding.CollapsedString, func(r *ServiceRef) *string { return &r.ServiceInterface }),
		binding.Scalar("service-ref-type", binding.CollapsedString, func(r *ServiceRef) *string { return &r.ServiceRefType }),
		binding.Scalar("wsdl-file", binding.CollapsedString, func(r *ServiceRef) *string { return &r.WsdlFile }),
		binding.Scalar("jaxrpc-mapping-file", binding.CollapsedString, func(r *ServiceRef) *string { return &r.JaxrpcMappingFile }),
		binding.Scalar("service-qname", binding.CollapsedString, func(r *ServiceRef) *string { return &r.ServiceQName }),
		binding.Many("port-component-ref", portComponentRefSchema, func(r *ServiceRef) *[]*PortComponentRef { return &r.PortComponentRefs }),
		binding.Many("handler", handlerSchema, func(r *ServiceRef) *[]*Handler { return &r.Handlers }),
		binding.One("handler-chains", handlerChainsSchema, func(r *ServiceRef) **HandlerChains { return &r.HandlerChains }),
	},
	resourceBaseFields(
		func(r *ServiceRef) *string { return &r.MappedName },
		func(r *ServiceRef) *string { return &r.LookupName },
		func(r *ServiceRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var resourceRefSchema = binding.NewSchema[ResourceRef](typeName("resource-refType"), binding.Fields(
	[]binding.Field[ResourceRef]{binding.ID(func(r *ResourceRef) *string { return &r.ID })},
	descriptionFields(func(r *ResourceRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[ResourceRef]{
		binding.Required(binding.Scalar("res-ref-name", binding.CollapsedString, func(r *ResourceRef) *string { return &r.Name })),
		binding.Scalar("res-type", binding.CollapsedString, func(r *ResourceRef) *string { return &r.Type }),
		binding.Scalar("res-auth", resAuths, func(r *ResourceRef) *ResAuth { return &r.Auth }),
		binding.Scalar("res-sharing-scope", resSharingScopes, func(r *ResourceRef) *ResSharingScope { return &r.SharingScope }),
	},
	resourceBaseFields(
		func(r *ResourceRef) *string { return &r.MappedName },
		func(r *ResourceRef) *string { return &r.LookupName },
		func(r *ResourceRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var resourceEnvRefSchema = binding.NewSchema[ResourceEnvRef](typeName("resource-env-refType"), binding.Fields(
	[]binding.Field[ResourceEnvRef]{binding.ID(func(r *ResourceEnvRef) *string { return &r.ID })},
	descriptionFields(func(r *ResourceEnvRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[ResourceEnvRef]{
		binding.Required(binding.Scalar("resource-env-ref-name", binding.CollapsedString, func(r *ResourceEnvRef) *string { return &r.Name })),
		binding.Scalar("resource-env-ref-type", binding.CollapsedString, func(r *ResourceEnvRef) *string { return &r.Type }),
	},
	resourceBaseFields(
		func(r *ResourceEnvRef) *string { return &r.MappedName },
		func(r *ResourceEnvRef) *string { return &r.LookupName },
		func(r *ResourceEnvRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var messageDestinationRefSchema = binding.NewSchema[MessageDestinationRef](typeName("message-destination-refType"), binding.Fields(
	[]binding.Field[MessageDestinationRef]{binding.ID(func(r *MessageDestinationRef) *string { return &r.ID })},
	descriptionFields(func(r *MessageDestinationRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[MessageDestinationRef]{
		binding.Required(binding.Scalar("message-destination-ref-name", binding.CollapsedString, func(r *MessageDestinationRef) *string { return &r.Name })),
		binding.Scalar("message-destination-type", binding.CollapsedString, func(r *MessageDestinationRef) *string { return &r.Type }),
		binding.Scalar("message-destination-usage", destinationUsages, func(r *MessageDestinationRef) *MessageDestinationUsage { return &r.Usage }),
		binding.Scalar("message-destination-link", binding.CollapsedString, func(r *MessageDestinationRef) *string { return &r.Link }),
	},
	resourceBaseFields(
		func(r *MessageDestinationRef) *string { return &r.MappedName },
		func(r *MessageDestinationRef) *string { return &r.LookupName },
		func(r *MessageDestinationRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var persistenceContextRefSchema = binding.NewSchema[PersistenceContextRef](typeName("persistence-context-refType"), binding.Fields(
	[]binding.Field[PersistenceContextRef]{binding.ID(func(r *PersistenceContextRef) *string { return &r.ID })},
	descriptionFields(func(r *PersistenceContextRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[PersistenceContextRef]{
		binding.Required(binding.Scalar("persistence-context-ref-name", binding.CollapsedString, func(r *PersistenceContextRef) *string { return &r.Name })),
		binding.Scalar("persistence-unit-name", binding.CollapsedString, func(r *PersistenceContextRef) *string { return &r.UnitName }),
		binding.Scalar("persistence-context-type", persistenceCtxTypes, func(r *PersistenceContextRef) *PersistenceContextType { return &r.Type }),
		binding.Many("persistence-property", propertySchema, func(r *PersistenceContextRef) *[]*Property { return &r.Properties }),
	},
	resourceBaseFields(
		func(r *PersistenceContextRef) *string { return &r.MappedName },
		nil,
		func(r *PersistenceContextRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var persistenceUnitRefSchema = binding.NewSchema[PersistenceUnitRef](typeName("persistence-unit-refType"), binding.Fields(
	[]binding.Field[PersistenceUnitRef]{binding.ID(func(r *PersistenceUnitRef) *string { return &r.ID })},
	descriptionFields(func(r *PersistenceUnitRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[PersistenceUnitRef]{
		binding.Required(binding.Scalar("persistence-unit-ref-name", binding.CollapsedString, func(r *PersistenceUnitRef) *string { return &r.Name })),
		binding.Scalar("persistence-unit-name", binding.CollapsedString, func(r *PersistenceUnitRef) *string { return &r.UnitName }),
	},
	resourceBaseFields(
		func(r *PersistenceUnitRef) *string { return &r.MappedName },
		nil,
		func(r *PersistenceUnitRef) *[]*InjectionTarget { return &r.InjectionTargets }),
)...)

var messageDestinationSchema = binding.NewSchema[MessageDestination](typeName("message-destinationType"), binding.Fields(
	[]binding.Field[MessageDestination]{binding.ID(func(d *MessageDestination) *string { return &d.ID })},
	descriptionGroupFields(func(d *MessageDestination) *DescriptionGroup { return &d.DescriptionGroup }),
	[]binding.Field[MessageDestination]{
		binding.Required(binding.Scalar("message-destination-name", binding.CollapsedString, func(d *MessageDestination) *string { return &d.Name })),
		binding.Scalar("mapped-name", binding.CollapsedString, func(d *MessageDestination) *string { return &d.MappedName }),
		binding.Scalar("lookup-name", binding.CollapsedString, func(d *MessageDestination) *string { return &d.LookupName }),
	},
)...)

var lifecycleCallbackSchema = binding.NewSchema[LifecycleCallback](typeName("lifecycle-callbackType"),
	binding.Scalar("lifecycle-callback-class", binding.CollapsedString, func(l *LifecycleCallback) *string { return &l.Class }),
	binding.Required(binding.Scalar("lifecycle-callback-method", binding.CollapsedString, func(l *LifecycleCallback) *string { return &l.Method })),
)

var dataSourceSchema = binding.NewSchema[DataSource](typeName("data-sourceType"), binding.Fields(
	[]binding.Field[DataSource]{binding.ID(func(d *DataSource) *string { return &d.ID })},
	descriptionFields(func(d *DataSource) *[]*Text { return &d.Descriptions }),
	[]binding.Field[DataSource]{
		binding.Required(binding.Scalar("name", binding.CollapsedString, func(d *DataSource) *string { return &d.Name })),
		binding.Scalar("class-name", binding.CollapsedString, func(d *DataSource) *string { return &d.ClassName }),
		binding.Scalar("server-name", binding.CollapsedString, func(d *DataSource) *string { return &d.ServerName }),
		binding.Scalar("port-number", binding.Int, func(d *DataSource) **int { return &d.PortNumber }),
		binding.Scalar("database-name", binding.CollapsedString, func(d *DataSource) *string { return &d.DatabaseName }),
		binding.Scalar("url", binding.CollapsedString, func(d *DataSource) *string { return &d.URL }),
		binding.Scalar("user", binding.CollapsedString, func(d *DataSource) *string { return &d.User }),
		binding.Scalar("password", binding.CollapsedString, func(d *DataSource) *string { return &d.Password }),
		binding.Nillable(binding.Many("property", propertySchema, func(d *DataSource) *[]*Property { return &d.Properties })),
		binding.Scalar("login-timeout", binding.Int, func(d *DataSource) **int { return &d.LoginTimeout }),
		binding.Scalar("transactional", binding.Boolean, func(d *DataSource) **bool { return &d.Transactional }),
		binding.Scalar("isolation-level", isolationLevels, func(d *DataSource) *IsolationLevel { return &d.IsolationLevel }),
		binding.Scalar("initial-pool-size", binding.Int, func(d *DataSource) **int { return &d.InitialPoolSize }),
		binding.Scalar("max-pool-size", binding.Int, func(d *DataSource) **int { return &d.MaxPoolSize }),
		binding.Scalar("min-pool-size", binding.Int, func(d *DataSource) **int { return &d.MinPoolSize }),
		binding.Scalar("max-idle-time", binding.Int, func(d *DataSource) **int { return &d.MaxIdleTime }),
		binding.Scalar("max-statements", binding.Int, func(d *DataSource) **int { return &d.MaxStatements }),
	},
)...)

// referenceFields maps the env-entry through persistence-unit-ref elements.
func referenceFields[T any](get func(*T) *JndiEnvironment) []binding.Field[T] {
	return []binding.Field[T]{
		binding.Indexed("env-entry", envEntrySchema, func(r *T) **binding.Keyed[EnvEntry] { return &get(r).EnvEntries }),
		binding.Indexed("ejb-ref", ejbRefSchema, func(r *T) **binding.Keyed[EjbRef] { return &get(r).EjbRefs }),
		binding.Indexed("ejb-local-ref", ejbLocalRefSchema, func(r *T) **binding.Keyed[EjbLocalRef] { return &get(r).EjbLocalRefs }),
		binding.Indexed("service-ref", serviceRefSchema, func(r *T) **binding.Keyed[ServiceRef] { return &get(r).ServiceRefs }),
		binding.Indexed("resource-ref", resourceRefSchema, func(r *T) **binding.Keyed[ResourceRef] { return &get(r).ResourceRefs }),
		binding.Indexed("resource-env-ref", resourceEnvRefSchema, func(r *T) **binding.Keyed[ResourceEnvRef] { return &get(r).ResourceEnvRefs }),
		binding.Indexed("message-destination-ref", messageDestinationRefSchema, func(r *T) **binding.Keyed[MessageDestinationRef] { return &get(r).MessageDestinationRefs }),
		binding.Indexed("persistence-context-ref", persistenceContextRefSchema, func(r *T) **binding.Keyed[PersistenceContextRef] { return &get(r).PersistenceContextRefs }),
		binding.Indexed("persistence-unit-ref", persistenceUnitRefSchema, func(r *T) **binding.Keyed[PersistenceUnitRef] { return &get(r).PersistenceUnitRefs }),
	}
}

func lifecycleFields[T any](get func(*T) *JndiEnvironment) []binding.Field[T] {
	return []binding.Field[T]{
		binding.Many("post-construct", lifecycleCallbackSchema, func(r *T) *[]*LifecycleCallback { return &get(r).PostConstruct }),
		binding.Many("pre-destroy", lifecycleCallbackSchema, func(r *T) *[]*LifecycleCallback { return &get(r).PreDestroy }),
	}
}

func dataSourceFields[T any](get func(*T) *JndiEnvironment) []binding.Field[T] {
	return []binding.Field[T]{
		binding.Indexed("data-source", dataSourceSchema, func(r *T) **binding.Keyed[DataSource] { return &get(r).DataSources }),
	}
}

// environmentFields maps the full JNDI environment group in the order
// components declare it.
func environmentFields[T any](get func(*T) *JndiEnvironment) []binding.Field[T] {
	return binding.Fields(referenceFields(get), lifecycleFields(get), dataSourceFields(get))
}
