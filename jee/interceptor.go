package jee

import "github.com/dhamidi/jeedd/binding"

type Interceptor struct {
	ID               string           `json:"id,omitempty"`
	Descriptions     []*Text          `json:"descriptions,omitempty"`
	InterceptorClass string           `json:"interceptorClass"`
	AroundInvoke     []*AroundInvoke  `json:"aroundInvoke,omitempty"`
	AroundTimeout    []*AroundTimeout `json:"aroundTimeout,omitempty"`
	JndiEnvironment
	PostActivate     []*LifecycleCallback `json:"postActivate,omitempty"`
	PrePassivate     []*LifecycleCallback `json:"prePassivate,omitempty"`
	AfterBegin       []*LifecycleCallback `json:"afterBegin,omitempty"`
	BeforeCompletion []*LifecycleCallback `json:"beforeCompletion,omitempty"`
	AfterCompletion  []*LifecycleCallback `json:"afterCompletion,omitempty"`
}

// Key implements binding.Keyer; interceptors are unique per class.
func (i *Interceptor) Key() string { return i.InterceptorClass }

type Interceptors struct {
	ID           string                      `json:"id,omitempty"`
	Descriptions []*Text                     `json:"descriptions,omitempty"`
	Interceptors *binding.Keyed[Interceptor] `json:"interceptors,omitempty"`
}

type InterceptorOrder struct {
	ID                 string   `json:"id,omitempty"`
	InterceptorClasses []string `json:"interceptorClasses,omitempty"`
}

// InterceptorBinding attaches interceptors to a bean, or to every bean
// when EjbName is "*".
type InterceptorBinding struct {
	ID                         string            `json:"id,omitempty"`
	Descriptions               []*Text           `json:"descriptions,omitempty"`
	EjbName                    string            `json:"ejbName"`
	InterceptorClasses         []string          `json:"interceptorClasses,omitempty"`
	InterceptorOrder           *InterceptorOrder `json:"interceptorOrder,omitempty"`
	ExcludeDefaultInterceptors *bool             `json:"excludeDefaultInterceptors,omitempty"`
	ExcludeClassInterceptors   *bool             `json:"excludeClassInterceptors,omitempty"`
	Method                     *NamedMethod      `json:"method,omitempty"`
}

var interceptorSchema = binding.NewSchema[Interceptor](typeName("interceptorType"), binding.Fields(
	[]binding.Field[Interceptor]{binding.ID(func(i *Interceptor) *string { return &i.ID })},
	descriptionFields(func(i *Interceptor) *[]*Text { return &i.Descriptions }),
	[]binding.Field[Interceptor]{
		binding.Required(binding.Scalar("interceptor-class", binding.CollapsedString, func(i *Interceptor) *string { return &i.InterceptorClass })),
		binding.Many("around-invoke", aroundInvokeSchema, func(i *Interceptor) *[]*AroundInvoke { return &i.AroundInvoke }),
		binding.Many("around-timeout", aroundTimeoutSchema, func(i *Interceptor) *[]*AroundTimeout { return &i.AroundTimeout }),
	},
	environmentFields(func(i *Interceptor) *JndiEnvironment { return &i.JndiEnvironment }),
	[]binding.Field[Interceptor]{
		binding.Many("post-activate", lifecycleCallbackSchema, func(i *Interceptor) *[]*LifecycleCallback { return &i.PostActivate }),
		binding.Many("pre-passivate", lifecycleCallbackSchema, func(i *Interceptor) *[]*LifecycleCallback { return &i.PrePassivate }),
		binding.Many("after-begin", lifecycleCallbackSchema, func(i *Interceptor) *[]*LifecycleCallback { return &i.AfterBegin }),
		binding.Many("before-completion", lifecycleCallbackSchema, func(i *Interceptor) *[]*LifecycleCallback { return &i.BeforeCompletion }),
		binding.Many("after-completion", lifecycleCallbackSchema, func(i *Interceptor) *[]*LifecycleCallback { return &i.AfterCompletion }),
	},
)...)

var interceptorsSchema = binding.NewSchema[Interceptors](typeName("interceptorsType"), binding.Fields(
	[]binding.Field[Interceptors]{binding.ID(func(i *Interceptors) *string { return &i.ID })},
	descriptionFields(func(i *Interceptors) *[]*Text { return &i.Descriptions }),
	[]binding.Field[Interceptors]{
		binding.Indexed("interceptor", interceptorSchema, func(i *Interceptors) **binding.Keyed[Interceptor] { return &i.Interceptors }),
	},
)...)

var interceptorOrderSchema = binding.NewSchema[InterceptorOrder](typeName("interceptor-orderType"),
	binding.ID(func(o *InterceptorOrder) *string { return &o.ID }),
	binding.Scalars("interceptor-class", binding.CollapsedString, func(o *InterceptorOrder) *[]string { return &o.InterceptorClasses }),
)

var interceptorBindingSchema = binding.NewSchema[InterceptorBinding](typeName("interceptor-bindingType"), binding.Fields(
	[]binding.Field[InterceptorBinding]{binding.ID(func(b *InterceptorBinding) *string { return &b.ID })},
	descriptionFields(func(b *InterceptorBinding) *[]*Text { return &b.Descriptions }),
	[]binding.Field[InterceptorBinding]{
		binding.Required(binding.Scalar("ejb-name", binding.CollapsedString, func(b *InterceptorBinding) *string { return &b.EjbName })),
		binding.Scalars("interceptor-class", binding.CollapsedString, func(b *InterceptorBinding) *[]string { return &b.InterceptorClasses }),
		binding.One("interceptor-order", interceptorOrderSchema, func(b *InterceptorBinding) **InterceptorOrder { return &b.InterceptorOrder }),
		binding.Scalar("exclude-default-interceptors", binding.Boolean, func(b *InterceptorBinding) **bool { return &b.ExcludeDefaultInterceptors }),
		binding.Scalar("exclude-class-interceptors", binding.Boolean, func(b *InterceptorBinding) **bool { return &b.ExcludeClassInterceptors }),
		binding.One("method", namedMethodSchema, func(b *InterceptorBinding) **NamedMethod { return &b.Method }),
	},
)...)
