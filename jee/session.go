package jee

import (
	"encoding/xml"

	"github.com/dhamidi/jeedd/binding"
)

// EnterpriseBean is a member of an ejb-jar's enterprise-beans list:
// *SessionBean, *EntityBean or *MessageDrivenBean.
type EnterpriseBean interface {
	BeanName() string
	BeanClass() string
	Environment() *JndiEnvironment
	enterpriseBean()
}

// SessionVariant selects the schema type a session bean is written as.
// The zero value is the plain session-beanType.
type SessionVariant string

const (
	VariantSession   SessionVariant = ""
	VariantStateless SessionVariant = "statelessBean"
	VariantStateful  SessionVariant = "statefulBean"
	VariantSingleton SessionVariant = "singletonBean"
	VariantManaged   SessionVariant = "managedBean"
)

// SessionBean is a session element. Variant records which xsi:type the
// element carried; all variants share the session-beanType content.
type SessionBean struct {
	Variant SessionVariant `json:"variant,omitempty"`
	ID      string         `json:"id,omitempty"`
	DescriptionGroup
	EjbName                   string                    `json:"ejbName"`
	MappedName                string                    `json:"mappedName,omitempty"`
	Home                      string                    `json:"home,omitempty"`
	Remote                    string                    `json:"remote,omitempty"`
	LocalHome                 string                    `json:"localHome,omitempty"`
	Local                     string                    `json:"local,omitempty"`
	BusinessLocal             *binding.Set              `json:"businessLocal,omitempty"`
	BusinessRemote            *binding.Set              `json:"businessRemote,omitempty"`
	LocalBean                 *Empty                    `json:"localBean,omitempty"`
	ServiceEndpoint           string                    `json:"serviceEndpoint,omitempty"`
	EjbClass                  string                    `json:"ejbClass,omitempty"`
	SessionType               SessionType               `json:"sessionType,omitempty"`
	StatefulTimeout           *Timeout                  `json:"statefulTimeout,omitempty"`
	TimeoutMethod             *NamedMethod              `json:"timeoutMethod,omitempty"`
	Timers                    []*Timer                  `json:"timers,omitempty"`
	InitOnStartup             *bool                     `json:"initOnStartup,omitempty"`
	ConcurrencyManagementType ConcurrencyManagementType `json:"concurrencyManagementType,omitempty"`
	ConcurrentMethods         []*ConcurrentMethod       `json:"concurrentMethods,omitempty"`
	DependsOn                 []string                  `json:"dependsOn,omitempty"`
	InitMethods               []*InitMethod             `json:"initMethods,omitempty"`
	RemoveMethods             []*RemoveMethod           `json:"removeMethods,omitempty"`
	AsyncMethods              []*AsyncMethod            `json:"asyncMethods,omitempty"`
	TransactionType           TransactionType           `json:"transactionType,omitempty"`
	AfterBeginMethod          *NamedMethod              `json:"afterBeginMethod,omitempty"`
	BeforeCompletionMethod    *NamedMethod              `json:"beforeCompletionMethod,omitempty"`
	AfterCompletionMethod     *NamedMethod              `json:"afterCompletionMethod,omitempty"`
	AroundInvoke              []*AroundInvoke           `json:"aroundInvoke,omitempty"`
	AroundTimeout             []*AroundTimeout          `json:"aroundTimeout,omitempty"`
	JndiEnvironment
	PostActivate       []*LifecycleCallback `json:"postActivate,omitempty"`
	PrePassivate       []*LifecycleCallback `json:"prePassivate,omitempty"`
	SecurityRoleRefs   []*SecurityRoleRef   `json:"securityRoleRefs,omitempty"`
	SecurityIdentity   *SecurityIdentity    `json:"securityIdentity,omitempty"`
	PassivationCapable *bool                `json:"passivationCapable,omitempty"`
}

// NewSessionBean returns a bean of the given variant. Stateless, stateful
// and singleton variants also get the matching session-type.
func NewSessionBean(variant SessionVariant, name, class string) *SessionBean {
	b := &SessionBean{Variant: variant, EjbName: name, EjbClass: class}
	switch variant {
	case VariantStateless:
		b.SessionType = SessionStateless
	case VariantStateful:
		b.SessionType = SessionStateful
	case VariantSingleton:
		b.SessionType = SessionSingleton
	}
	return b
}

func (b *SessionBean) BeanName() string              { return b.EjbName }
func (b *SessionBean) BeanClass() string             { return b.EjbClass }
func (b *SessionBean) Environment() *JndiEnvironment { return &b.JndiEnvironment }
func (*SessionBean) enterpriseBean()                 {}

func (v SessionVariant) typeName() xml.Name {
	if v == VariantSession {
		return typeName("session-beanType")
	}
	return typeName(string(v))
}

var sessionBeanSchema = binding.NewSchema[SessionBean](typeName("session-beanType"), binding.Fields(
	[]binding.Field[SessionBean]{binding.ID(func(b *SessionBean) *string { return &b.ID })},
	descriptionGroupFields(func(b *SessionBean) *DescriptionGroup { return &b.DescriptionGroup }),
	[]binding.Field[SessionBean]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(b *SessionBean) *string { return &b.EjbName })),
		binding.Scalar("mapped-name", binding.CollapsedString, func(b *SessionBean) *string { return &b.MappedName }),
		binding.Scalar("home", binding.CollapsedString, func(b *SessionBean) *string { return &b.Home }),
		binding.Scalar("remote", binding.CollapsedString, func(b *SessionBean) *string { return &b.Remote }),
		binding.Scalar("local-home", binding.CollapsedString, func(b *SessionBean) *string { return &b.LocalHome }),
		binding.Scalar("local", binding.CollapsedString, func(b *SessionBean) *string { return &b.Local }),
		binding.Unique("business-local", binding.CollapsedString, func(b *SessionBean) **binding.Set { return &b.BusinessLocal }),
		binding.Unique("business-remote", binding.CollapsedString, func(b *SessionBean) **binding.Set { return &b.BusinessRemote }),
		binding.One("local-bean", emptySchema, func(b *SessionBean) **Empty { return &b.LocalBean }),
		binding.Scalar("service-endpoint", binding.CollapsedString, func(b *SessionBean) *string { return &b.ServiceEndpoint }),
		binding.Scalar("ejb-class", binding.CollapsedString, func(b *SessionBean) *string { return &b.EjbClass }),
		binding.Scalar("session-type", sessionTypes, func(b *SessionBean) *SessionType { return &b.SessionType }),
		binding.One("stateful-timeout", timeoutSchema, func(b *SessionBean) **Timeout { return &b.StatefulTimeout }),
		binding.One("timeout-method", namedMethodSchema, func(b *SessionBean) **NamedMethod { return &b.TimeoutMethod }),
		binding.Many("timer", timerSchema, func(b *SessionBean) *[]*Timer { return &b.Timers }),
		binding.Scalar("init-on-startup", binding.Boolean, func(b *SessionBean) **bool { return &b.InitOnStartup }),
		binding.Scalar("concurrency-management-type", concurrencyTypes, func(b *SessionBean) *ConcurrencyManagementType { return &b.ConcurrencyManagementType }),
		binding.Many("concurrent-method", concurrentMethodSchema, func(b *SessionBean) *[]*ConcurrentMethod { return &b.ConcurrentMethods }),
		binding.Wrapped("depends-on", "ejb-name", binding.CollapsedString, func(b *SessionBean) *[]string { return &b.DependsOn }),
		binding.Many("init-method", initMethodSchema, func(b *SessionBean) *[]*InitMethod { return &b.InitMethods }),
		binding.Many("remove-method", removeMethodSchema, func(b *SessionBean) *[]*RemoveMethod { return &b.RemoveMethods }),
		binding.Many("async-method", asyncMethodSchema, func(b *SessionBean) *[]*AsyncMethod { return &b.AsyncMethods }),
		binding.Scalar("transaction-type", transactionTypes, func(b *SessionBean) *TransactionType { return &b.TransactionType }),
		binding.One("after-begin-method", namedMethodSchema, func(b *SessionBean) **NamedMethod { return &b.AfterBeginMethod }),
		binding.One("before-completion-method", namedMethodSchema, func(b *SessionBean) **NamedMethod { return &b.BeforeCompletionMethod }),
		binding.One("after-completion-method", namedMethodSchema, func(b *SessionBean) **NamedMethod { return &b.AfterCompletionMethod }),
		binding.Many("around-invoke", aroundInvokeSchema, func(b *SessionBean) *[]*AroundInvoke { return &b.AroundInvoke }),
		binding.Many("around-timeout", aroundTimeoutSchema, func(b *SessionBean) *[]*AroundTimeout { return &b.AroundTimeout }),
	},
	environmentFields(func(b *SessionBean) *JndiEnvironment { return &b.JndiEnvironment }),
	[]binding.Field[SessionBean]{
		binding.Many("post-activate", lifecycleCallbackSchema, func(b *SessionBean) *[]*LifecycleCallback { return &b.PostActivate }),
		binding.Many("pre-passivate", lifecycleCallbackSchema, func(b *SessionBean) *[]*LifecycleCallback { return &b.PrePassivate }),
		binding.Many("security-role-ref", securityRoleRefSchema, func(b *SessionBean) *[]*SecurityRoleRef { return &b.SecurityRoleRefs }),
		binding.One("security-identity", securityIdentitySchema, func(b *SessionBean) **SecurityIdentity { return &b.SecurityIdentity }),
		binding.Scalar("passivation-capable", binding.Boolean, func(b *SessionBean) **bool { return &b.PassivationCapable }),
	},
)...).WithTypeOf(func(b *SessionBean) xml.Name { return b.Variant.typeName() })

func init() {
	for _, v := range []SessionVariant{VariantStateless, VariantStateful, VariantSingleton, VariantManaged} {
		v := v
		sessionBeanSchema.Derive(string(v), func() *SessionBean { return &SessionBean{Variant: v} })
	}
}
