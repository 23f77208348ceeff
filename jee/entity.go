package jee

import "github.com/dhamidi/jeedd/binding"

type CmpField struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	FieldName    string  `json:"fieldName"`
}

type QueryMethod struct {
	ID           string        `json:"id,omitempty"`
	MethodName   string        `json:"methodName"`
	MethodParams *MethodParams `json:"methodParams"`
}

// Query is an EJB QL finder or select declaration of a CMP entity.
type Query struct {
	ID                string            `json:"id,omitempty"`
	Description       *Text             `json:"description,omitempty"`
	QueryMethod       *QueryMethod      `json:"queryMethod"`
	ResultTypeMapping ResultTypeMapping `json:"resultTypeMapping,omitempty"`
	EjbQL             string            `json:"ejbQL"`
}

type EntityBean struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	EjbName            string          `json:"ejbName"`
	MappedName         string          `json:"mappedName,omitempty"`
	Home               string          `json:"home,omitempty"`
	Remote             string          `json:"remote,omitempty"`
	LocalHome          string          `json:"localHome,omitempty"`
	Local              string          `json:"local,omitempty"`
	EjbClass           string          `json:"ejbClass"`
	PersistenceType    PersistenceType `json:"persistenceType"`
	PrimKeyClass       string          `json:"primKeyClass"`
	Reentrant          *bool           `json:"reentrant"`
	CmpVersion         CmpVersion      `json:"cmpVersion,omitempty"`
	AbstractSchemaName string          `json:"abstractSchemaName,omitempty"`
	CmpFields          []*CmpField     `json:"cmpFields,omitempty"`
	PrimkeyField       string          `json:"primkeyField,omitempty"`
	JndiEnvironment
	SecurityRoleRefs []*SecurityRoleRef `json:"securityRoleRefs,omitempty"`
	SecurityIdentity *SecurityIdentity  `json:"securityIdentity,omitempty"`
	Queries          []*Query           `json:"queries,omitempty"`
}

func (b *EntityBean) BeanName() string              { return b.EjbName }
func (b *EntityBean) BeanClass() string             { return b.EjbClass }
func (b *EntityBean) Environment() *JndiEnvironment { return &b.JndiEnvironment }
func (*EntityBean) enterpriseBean()                 {}

var cmpFieldSchema = binding.NewSchema[CmpField](typeName("cmp-fieldType"), binding.Fields(
	[]binding.Field[CmpField]{binding.ID(func(f *CmpField) *string { return &f.ID })},
	descriptionFields(func(f *CmpField) *[]*Text { return &f.Descriptions }),
	[]binding.Field[CmpField]{
		binding.Required(binding.Scalar("field-name", binding.CollapsedString, func(f *CmpField) *string { return &f.FieldName })),
	},
)...)

var queryMethodSchema = binding.NewSchema[QueryMethod](typeName("query-methodType"),
	binding.ID(func(m *QueryMethod) *string { return &m.ID }),
	binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(m *QueryMethod) *string { return &m.MethodName })),
	binding.One("method-params", methodParamsSchema, func(m *QueryMethod) **MethodParams { return &m.MethodParams }),
)

var querySchema = binding.NewSchema[Query](typeName("queryType"),
	binding.ID(func(q *Query) *string { return &q.ID }),
	binding.One("description", textSchema, func(q *Query) **Text { return &q.Description }),
	binding.One("query-method", queryMethodSchema, func(q *Query) **QueryMethod { return &q.QueryMethod }),
	binding.Scalar("result-type-mapping", resultTypeMappings, func(q *Query) *ResultTypeMapping { return &q.ResultTypeMapping }),
	binding.Required(binding.Scalar("ejb-ql", binding.String, func(q *Query) *string { return &q.EjbQL })),
)

var entityBeanSchema = binding.NewSchema[EntityBean](typeName("entity-beanType"), binding.Fields(
	[]binding.Field[EntityBean]{binding.ID(func(b *EntityBean) *string { return &b.ID })},
	descriptionGroupFields(func(b *EntityBean) *DescriptionGroup { return &b.DescriptionGroup }),
	[]binding.Field[EntityBean]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(b *EntityBean) *string { return &b.EjbName })),
		binding.Scalar("mapped-name", binding.CollapsedString, func(b *EntityBean) *string { return &b.MappedName }),
		binding.Scalar("home", binding.CollapsedString, func(b *EntityBean) *string { return &b.Home }),
		binding.Scalar("remote", binding.CollapsedString, func(b *EntityBean) *string { return &b.Remote }),
		binding.Scalar("local-home", binding.CollapsedString, func(b *EntityBean) *string { return &b.LocalHome }),
		binding.Scalar("local", binding.CollapsedString, func(b *EntityBean) *string { return &b.Local }),
		binding.Scalar("ejb-class", binding.CollapsedString, func(b *EntityBean) *string { return &b.EjbClass }),
		binding.Required(binding.Scalar("persistence-type", persistenceTypes, func(b *EntityBean) *PersistenceType { return &b.PersistenceType })),
		binding.Scalar("prim-key-class", binding.CollapsedString, func(b *EntityBean) *string { return &b.PrimKeyClass }),
		binding.Scalar("reentrant", binding.Boolean, func(b *EntityBean) **bool { return &b.Reentrant }),
		binding.Scalar("cmp-version", cmpVersions, func(b *EntityBean) *CmpVersion { return &b.CmpVersion }),
		binding.Scalar("abstract-schema-name", binding.CollapsedString, func(b *EntityBean) *string { return &b.AbstractSchemaName }),
		binding.Many("cmp-field", cmpFieldSchema, func(b *EntityBean) *[]*CmpField { return &b.CmpFields }),
		binding.Scalar("primkey-field", binding.CollapsedString, func(b *EntityBean) *string { return &b.PrimkeyField }),
	},
	environmentFields(func(b *EntityBean) *JndiEnvironment { return &b.JndiEnvironment }),
	[]binding.Field[EntityBean]{
		binding.Many("security-role-ref", securityRoleRefSchema, func(b *EntityBean) *[]*SecurityRoleRef { return &b.SecurityRoleRefs }),
		binding.One("security-identity", securityIdentitySchema, func(b *EntityBean) **SecurityIdentity { return &b.SecurityIdentity }),
		binding.Many("query", querySchema, func(b *EntityBean) *[]*Query { return &b.Queries }),
	},
)...)
