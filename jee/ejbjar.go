package jee

import "github.com/dhamidi/jeedd/binding"

// EjbJar is the root of ejb-jar.xml.
type EjbJar struct {
	ID               string `json:"id,omitempty"`
	MetadataComplete *bool  `json:"metadataComplete,omitempty"`
	Version          string `json:"version,omitempty"`
	ModuleName       string `json:"moduleName,omitempty"`
	DescriptionGroup
	EnterpriseBeans    []EnterpriseBean    `json:"enterpriseBeans"`
	Interceptors       *Interceptors       `json:"interceptors,omitempty"`
	Relationships      *Relationships      `json:"relationships,omitempty"`
	AssemblyDescriptor *AssemblyDescriptor `json:"assemblyDescriptor,omitempty"`
	EjbClientJar       string              `json:"ejbClientJar,omitempty"`
}

// Bean returns the enterprise bean named name.
func (j *EjbJar) Bean(name string) (EnterpriseBean, bool) {
	for _, b := range j.EnterpriseBeans {
		if b != nil && b.BeanName() == name {
			return b, true
		}
	}
	return nil, false
}

// AddBean appends b to the enterprise-beans list.
func (j *EjbJar) AddBean(b EnterpriseBean) {
	j.EnterpriseBeans = append(j.EnterpriseBeans, b)
}

type CmrField struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
}

type RelationshipRoleSource struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	EjbName      string  `json:"ejbName"`
}

type EjbRelationshipRole struct {
	ID                     string                  `json:"id,omitempty"`
	Descriptions           []*Text                 `json:"descriptions,omitempty"`
	Name                   string                  `json:"name,omitempty"`
	Multiplicity           Multiplicity            `json:"multiplicity"`
	CascadeDelete          *Empty                  `json:"cascadeDelete,omitempty"`
	RelationshipRoleSource *RelationshipRoleSource `json:"relationshipRoleSource"`
	CmrField               *CmrField               `json:"cmrField,omitempty"`
}

type EjbRelation struct {
	ID           string                 `json:"id,omitempty"`
	Descriptions []*Text                `json:"descriptions,omitempty"`
	Name         string                 `json:"name,omitempty"`
	Roles        []*EjbRelationshipRole `json:"roles"`
}

type Relationships struct {
	ID           string         `json:"id,omitempty"`
	Descriptions []*Text        `json:"descriptions,omitempty"`
	Relations    []*EjbRelation `json:"relations"`
}

// Method names a bean method, or every method of a bean when Name is "*".
type Method struct {
	ID           string        `json:"id,omitempty"`
	Descriptions []*Text       `json:"descriptions,omitempty"`
	EjbName      string        `json:"ejbName"`
	Intf         MethodIntf    `json:"intf,omitempty"`
	Name         string        `json:"name"`
	MethodParams *MethodParams `json:"methodParams,omitempty"`
}

type MethodPermission struct {
	ID           string    `json:"id,omitempty"`
	Descriptions []*Text   `json:"descriptions,omitempty"`
	Unchecked    *Empty    `json:"unchecked,omitempty"`
	RoleNames    []string  `json:"roleNames,omitempty"`
	Methods      []*Method `json:"methods"`
}

type ContainerTransaction struct {
	ID             string         `json:"id,omitempty"`
	Descriptions   []*Text        `json:"descriptions,omitempty"`
	Methods        []*Method      `json:"methods"`
	TransAttribute TransAttribute `json:"transAttribute"`
}

type ExcludeList struct {
	ID           string    `json:"id,omitempty"`
	Descriptions []*Text   `json:"descriptions,omitempty"`
	Methods      []*Method `json:"methods"`
}

type ApplicationException struct {
	ID             string `json:"id,omitempty"`
	ExceptionClass string `json:"exceptionClass"`
	Rollback       *bool  `json:"rollback,omitempty"`
	Inherited      *bool  `json:"inherited,omitempty"`
}

func (e *ApplicationException) Key() string { return e.ExceptionClass }

type AssemblyDescriptor struct {
	ID                    string                               `json:"id,omitempty"`
	SecurityRoles         []*SecurityRole                      `json:"securityRoles,omitempty"`
	MethodPermissions     []*MethodPermission                  `json:"methodPermissions,omitempty"`
	ContainerTransactions []*ContainerTransaction              `json:"containerTransactions,omitempty"`
	InterceptorBindings   []*InterceptorBinding                `json:"interceptorBindings,omitempty"`
	MessageDestinations   *binding.Keyed[MessageDestination]   `json:"messageDestinations,omitempty"`
	ExcludeList           *ExcludeList                         `json:"excludeList,omitempty"`
	ApplicationExceptions *binding.Keyed[ApplicationException] `json:"applicationExceptions,omitempty"`
}

var cmrFieldSchema = binding.NewSchema[CmrField](typeName("cmr-fieldType"), binding.Fields(
	[]binding.Field[CmrField]{binding.ID(func(f *CmrField) *string { return &f.ID })},
	descriptionFields(func(f *CmrField) *[]*Text { return &f.Descriptions }),
	[]binding.Field[CmrField]{
		binding.Required(binding.Scalar("cmr-field-name", binding.CollapsedString, func(f *CmrField) *string { return &f.Name })),
		binding.Scalar("cmr-field-type", binding.CollapsedString, func(f *CmrField) *string { return &f.Type }),
	},
)...)

var relationshipRoleSourceSchema = binding.NewSchema[RelationshipRoleSource](typeName("relationship-role-sourceType"), binding.Fields(
	[]binding.Field[RelationshipRoleSource]{binding.ID(func(s *RelationshipRoleSource) *string { return &s.ID })},
	descriptionFields(func(s *RelationshipRoleSource) *[]*Text { return &s.Descriptions }),
	[]binding.Field[RelationshipRoleSource]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(s *RelationshipRoleSource) *string { return &s.EjbName })),
	},
)...)

var ejbRelationshipRoleSchema = binding.NewSchema[EjbRelationshipRole](typeName("ejb-relationship-roleType"), binding.Fields(
	[]binding.Field[EjbRelationshipRole]{binding.ID(func(r *EjbRelationshipRole) *string { return &r.ID })},
	descriptionFields(func(r *EjbRelationshipRole) *[]*Text { return &r.Descriptions }),
	[]binding.Field[EjbRelationshipRole]{
		binding.Scalar("ejb-relationship-role-name", binding.CollapsedString, func(r *EjbRelationshipRole) *string { return &r.Name }),
		binding.Required(binding.Scalar("multiplicity", multiplicities, func(r *EjbRelationshipRole) *Multiplicity { return &r.Multiplicity })),
		binding.One("cascade-delete", emptySchema, func(r *EjbRelationshipRole) **Empty { return &r.CascadeDelete }),
		binding.One("relationship-role-source", relationshipRoleSourceSchema, func(r *EjbRelationshipRole) **RelationshipRoleSource { return &r.RelationshipRoleSource }),
		binding.One("cmr-field", cmrFieldSchema, func(r *EjbRelationshipRole) **CmrField { return &r.CmrField }),
	},
)...)

var ejbRelationSchema = binding.NewSchema[EjbRelation](typeName("ejb-relationType"), binding.Fields(
	[]binding.Field[EjbRelation]{binding.ID(func(r *EjbRelation) *string { return &r.ID })},
	descriptionFields(func(r *EjbRelation) *[]*Text { return &r.Descriptions }),
	[]binding.Field[EjbRelation]{
		binding.Scalar("ejb-relation-name", binding.CollapsedString, func(r *EjbRelation) *string { return &r.Name }),
		binding.Many("ejb-relationship-role", ejbRelationshipRoleSchema, func(r *EjbRelation) *[]*EjbRelationshipRole { return &r.Roles }),
	},
)...)

var relationshipsSchema = binding.NewSchema[Relationships](typeName("relationshipsType"), binding.Fields(
	[]binding.Field[Relationships]{binding.ID(func(r *Relationships) *string { return &r.ID })},
	descriptionFields(func(r *Relationships) *[]*Text { return &r.Descriptions }),
	[]binding.Field[Relationships]{
		binding.Many("ejb-relation", ejbRelationSchema, func(r *Relationships) *[]*EjbRelation { return &r.Relations }),
	},
)...)

var methodSchema = binding.NewSchema[Method](typeName("methodType"), binding.Fields(
	[]binding.Field[Method]{binding.ID(func(m *Method) *string { return &m.ID })},
	descriptionFields(func(m *Method) *[]*Text { return &m.Descriptions }),
	[]binding.Field[Method]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(m *Method) *string { return &m.EjbName })),
		binding.Scalar("method-intf", methodIntfs, func(m *Method) *MethodIntf { return &m.Intf }),
		binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(m *Method) *string { return &m.Name })),
		binding.One("method-params", methodParamsSchema, func(m *Method) **MethodParams { return &m.MethodParams }),
	},
)...)

var methodPermissionSchema = binding.NewSchema[MethodPermission](typeName("method-permissionType"), binding.Fields(
	[]binding.Field[MethodPermission]{binding.ID(func(p *MethodPermission) *string { return &p.ID })},
	descriptionFields(func(p *MethodPermission) *[]*Text { return &p.Descriptions }),
	[]binding.Field[MethodPermission]{
		binding.One("unchecked", emptySchema, func(p *MethodPermission) **Empty { return &p.Unchecked }),
		binding.Scalars("role-name", binding.CollapsedString, func(p *MethodPermission) *[]string { return &p.RoleNames }),
		binding.Many("method", methodSchema, func(p *MethodPermission) *[]*Method { return &p.Methods }),
	},
)...)

var containerTransactionSchema = binding.NewSchema[ContainerTransaction](typeName("container-transactionType"), binding.Fields(
	[]binding.Field[ContainerTransaction]{binding.ID(func(t *ContainerTransaction) *string { return &t.ID })},
	descriptionFields(func(t *ContainerTransaction) *[]*Text { return &t.Descriptions }),
	[]binding.Field[ContainerTransaction]{
		binding.Many("method", methodSchema, func(t *ContainerTransaction) *[]*Method { return &t.Methods }),
		binding.Required(binding.Scalar("trans-attribute", transAttributes, func(t *ContainerTransaction) *TransAttribute { return &t.TransAttribute })),
	},
)...)

var excludeListSchema = binding.NewSchema[ExcludeList](typeName("exclude-listType"), binding.Fields(
	[]binding.Field[ExcludeList]{binding.ID(func(l *ExcludeList) *string { return &l.ID })},
	descriptionFields(func(l *ExcludeList) *[]*Text { return &l.Descriptions }),
	[]binding.Field[ExcludeList]{
		binding.Many("method", methodSchema, func(l *ExcludeList) *[]*Method { return &l.Methods }),
	},
)...)

var applicationExceptionSchema = binding.NewSchema[ApplicationException](typeName("application-exceptionType"),
	binding.ID(func(e *ApplicationException) *string { return &e.ID }),
	binding.Required(binding.Scalar("exception-class", binding.CollapsedString, func(e *ApplicationException) *string { return &e.ExceptionClass })),
	binding.Scalar("rollback", binding.Boolean, func(e *ApplicationException) **bool { return &e.Rollback }),
	binding.Scalar("inherited", binding.Boolean, func(e *ApplicationException) **bool { return &e.Inherited }),
)

var assemblyDescriptorSchema = binding.NewSchema[AssemblyDescriptor](typeName("assembly-descriptorType"),
	binding.ID(func(a *AssemblyDescriptor) *string { return &a.ID }),
	binding.Many("security-role", securityRoleSchema, func(a *AssemblyDescriptor) *[]*SecurityRole { return &a.SecurityRoles }),
	binding.Many("method-permission", methodPermissionSchema, func(a *AssemblyDescriptor) *[]*MethodPermission { return &a.MethodPermissions }),
	binding.Many("container-transaction", containerTransactionSchema, func(a *AssemblyDescriptor) *[]*ContainerTransaction { return &a.ContainerTransactions }),
	binding.Many("interceptor-binding", interceptorBindingSchema, func(a *AssemblyDescriptor) *[]*InterceptorBinding { return &a.InterceptorBindings }),
	binding.Indexed("message-destination", messageDestinationSchema, func(a *AssemblyDescriptor) **binding.Keyed[MessageDestination] { return &a.MessageDestinations }),
	binding.One("exclude-list", excludeListSchema, func(a *AssemblyDescriptor) **ExcludeList { return &a.ExcludeList }),
	binding.Indexed("application-exception", applicationExceptionSchema, func(a *AssemblyDescriptor) **binding.Keyed[ApplicationException] { return &a.ApplicationExceptions }),
)

func unwrapBean[B any](b EnterpriseBean) (*B, bool) {
	v, ok := any(b).(*B)
	return v, ok && v != nil
}

var ejbJarSchema = binding.NewSchema[EjbJar](typeName("ejb-jarType"), binding.Fields(
	[]binding.Field[EjbJar]{
		binding.ID(func(j *EjbJar) *string { return &j.ID }),
		binding.Attr("metadata-complete", binding.Boolean, func(j *EjbJar) **bool { return &j.MetadataComplete }),
		binding.Attr("version", binding.CollapsedString, func(j *EjbJar) *string { return &j.Version }),
		binding.Scalar("module-name", binding.CollapsedString, func(j *EjbJar) *string { return &j.ModuleName }),
	},
	descriptionGroupFields(func(j *EjbJar) *DescriptionGroup { return &j.DescriptionGroup }),
	[]binding.Field[EjbJar]{
		binding.Always(binding.Choice("enterprise-beans", func(j *EjbJar) *[]EnterpriseBean { return &j.EnterpriseBeans },
			binding.Variant("session", sessionBeanSchema,
				func(b *SessionBean) EnterpriseBean { return b }, unwrapBean[SessionBean]),
			binding.Variant("entity", entityBeanSchema,
				func(b *EntityBean) EnterpriseBean { return b }, unwrapBean[EntityBean]),
			binding.Variant("message-driven", messageDrivenBeanSchema,
				func(b *MessageDrivenBean) EnterpriseBean { return b }, unwrapBean[MessageDrivenBean]),
		)),
		binding.One("interceptors", interceptorsSchema, func(j *EjbJar) **Interceptors { return &j.Interceptors }),
		binding.One("relationships", relationshipsSchema, func(j *EjbJar) **Relationships { return &j.Relationships }),
		binding.One("assembly-descriptor", assemblyDescriptorSchema, func(j *EjbJar) **AssemblyDescriptor { return &j.AssemblyDescriptor }),
		binding.Scalar("ejb-client-jar", binding.CollapsedString, func(j *EjbJar) *string { return &j.EjbClientJar }),
	},
)...)
