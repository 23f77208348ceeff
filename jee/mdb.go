package jee

import "github.com/dhamidi/jeedd/binding"

type ActivationConfigProperty struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ActivationConfig struct {
	ID           string                      `json:"id,omitempty"`
	Descriptions []*Text                     `json:"descriptions,omitempty"`
	Properties   []*ActivationConfigProperty `json:"properties,omitempty"`
}

// Property returns the value of the named activation property.
func (a *ActivationConfig) Property(name string) (string, bool) {
	for _, p := range a.Properties {
		if p != nil && p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// MessageDrivenDestination is the EJB 2.0 form of a destination
// declaration, kept for old descriptors.
type MessageDrivenDestination struct {
	ID                     string `json:"id,omitempty"`
	DestinationType        string `json:"destinationType,omitempty"`
	SubscriptionDurability string `json:"subscriptionDurability,omitempty"`
}

type MessageDrivenBean struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	EjbName                  string                    `json:"ejbName"`
	MappedName               string                    `json:"mappedName,omitempty"`
	EjbClass                 string                    `json:"ejbClass,omitempty"`
	MessagingType            string                    `json:"messagingType,omitempty"`
	TimeoutMethod            *NamedMethod              `json:"timeoutMethod,omitempty"`
	Timers                   []*Timer                  `json:"timers,omitempty"`
	TransactionType          TransactionType           `json:"transactionType,omitempty"`
	MessageSelector          string                    `json:"messageSelector,omitempty"`
	AcknowledgeMode          string                    `json:"acknowledgeMode,omitempty"`
	MessageDrivenDestination *MessageDrivenDestination `json:"messageDrivenDestination,omitempty"`
	MessageDestinationType   string                    `json:"messageDestinationType,omitempty"`
	MessageDestinationLink   string                    `json:"messageDestinationLink,omitempty"`
	ActivationConfig         *ActivationConfig         `json:"activationConfig,omitempty"`
	AroundInvoke             []*AroundInvoke           `json:"aroundInvoke,omitempty"`
	AroundTimeout            []*AroundTimeout          `json:"aroundTimeout,omitempty"`
	JndiEnvironment
	SecurityRoleRefs []*SecurityRoleRef `json:"securityRoleRefs,omitempty"`
	SecurityIdentity *SecurityIdentity  `json:"securityIdentity,omitempty"`
}

func (b *MessageDrivenBean) BeanName() string              { return b.EjbName }
func (b *MessageDrivenBean) BeanClass() string             { return b.EjbClass }
func (b *MessageDrivenBean) Environment() *JndiEnvironment { return &b.JndiEnvironment }
func (*MessageDrivenBean) enterpriseBean()                 {}

var activationConfigPropertySchema = binding.NewSchema[ActivationConfigProperty](typeName("activation-config-propertyType"),
	binding.ID(func(p *ActivationConfigProperty) *string { return &p.ID }),
	binding.Required(binding.Scalar("activation-config-property-name", binding.CollapsedString, func(p *ActivationConfigProperty) *string { return &p.Name })),
	binding.Required(binding.Scalar("activation-config-property-value", binding.String, func(p *ActivationConfigProperty) *string { return &p.Value })),
)

var activationConfigSchema = binding.NewSchema[ActivationConfig](typeName("activation-configType"), binding.Fields(
	[]binding.Field[ActivationConfig]{binding.ID(func(a *ActivationConfig) *string { return &a.ID })},
	descriptionFields(func(a *ActivationConfig) *[]*Text { return &a.Descriptions }),
	[]binding.Field[ActivationConfig]{
		binding.Many("activation-config-property", activationConfigPropertySchema, func(a *ActivationConfig) *[]*ActivationConfigProperty { return &a.Properties }),
	},
)...)

var messageDrivenDestinationSchema = binding.NewSchema[MessageDrivenDestination](typeName("message-driven-destinationType"),
	binding.ID(func(d *MessageDrivenDestination) *string { return &d.ID }),
	binding.Scalar("destination-type", binding.CollapsedString, func(d *MessageDrivenDestination) *string { return &d.DestinationType }),
	binding.Scalar("subscription-durability", binding.CollapsedString, func(d *MessageDrivenDestination) *string { return &d.SubscriptionDurability }),
)

var messageDrivenBeanSchema = binding.NewSchema[MessageDrivenBean](typeName("message-driven-beanType"), binding.Fields(
	[]binding.Field[MessageDrivenBean]{binding.ID(func(b *MessageDrivenBean) *string { return &b.ID })},
	descriptionGroupFields(func(b *MessageDrivenBean) *DescriptionGroup { return &b.DescriptionGroup }),
	[]binding.Field[MessageDrivenBean]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.EjbName })),
		binding.Scalar("mapped-name", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.MappedName }),
		binding.Scalar("ejb-class", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.EjbClass }),
		binding.Scalar("messaging-type", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.MessagingType }),
		binding.One("timeout-method", namedMethodSchema, func(b *MessageDrivenBean) **NamedMethod { return &b.TimeoutMethod }),
		binding.Many("timer", timerSchema, func(b *MessageDrivenBean) *[]*Timer { return &b.Timers }),
		binding.Scalar("transaction-type", transactionTypes, func(b *MessageDrivenBean) *TransactionType { return &b.TransactionType }),
		binding.Scalar("message-selector", binding.String, func(b *MessageDrivenBean) *string { return &b.MessageSelector }),
		binding.Scalar("acknowledge-mode", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.AcknowledgeMode }),
		binding.One("message-driven-destination", messageDrivenDestinationSchema, func(b *MessageDrivenBean) **MessageDrivenDestination { return &b.MessageDrivenDestination }),
		binding.Scalar("message-destination-type", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.MessageDestinationType }),
		binding.Scalar("message-destination-link", binding.CollapsedString, func(b *MessageDrivenBean) *string { return &b.MessageDestinationLink }),
		binding.One("activation-config", activationConfigSchema, func(b *MessageDrivenBean) **ActivationConfig { return &b.ActivationConfig }),
		binding.Many("around-invoke", aroundInvokeSchema, func(b *MessageDrivenBean) *[]*AroundInvoke { return &b.AroundInvoke }),
		binding.Many("around-timeout", aroundTimeoutSchema, func(b *MessageDrivenBean) *[]*AroundTimeout { return &b.AroundTimeout }),
	},
	environmentFields(func(b *MessageDrivenBean) *JndiEnvironment { return &b.JndiEnvironment }),
	[]binding.Field[MessageDrivenBean]{
		binding.Many("security-role-ref", securityRoleRefSchema, func(b *MessageDrivenBean) *[]*SecurityRoleRef { return &b.SecurityRoleRefs }),
		binding.One("security-identity", securityIdentitySchema, func(b *MessageDrivenBean) **SecurityIdentity { return &b.SecurityIdentity }),
	},
)...)
