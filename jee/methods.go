package jee

import "github.com/dhamidi/jeedd/binding"

type MethodParams struct {
	ID     string   `json:"id,omitempty"`
	Params []string `json:"params,omitempty"`
}

type NamedMethod struct {
	ID           string        `json:"id,omitempty"`
	MethodName   string        `json:"methodName"`
	MethodParams *MethodParams `json:"methodParams,omitempty"`
}

// AroundInvoke also describes around-timeout interceptor methods.
type AroundInvoke struct {
	Class      string `json:"class,omitempty"`
	MethodName string `json:"methodName"`
}

type AroundTimeout = AroundInvoke

type Timeout struct {
	ID      string   `json:"id,omitempty"`
	Timeout *int     `json:"timeout"`
	Unit    TimeUnit `json:"unit"`
}

type TimerSchedule struct {
	ID         string `json:"id,omitempty"`
	Second     string `json:"second,omitempty"`
	Minute     string `json:"minute,omitempty"`
	Hour       string `json:"hour,omitempty"`
	DayOfMonth string `json:"dayOfMonth,omitempty"`
	Month      string `json:"month,omitempty"`
	DayOfWeek  string `json:"dayOfWeek,omitempty"`
	Year       string `json:"year,omitempty"`
}

type Timer struct {
	ID            string         `json:"id,omitempty"`
	Descriptions  []*Text        `json:"descriptions,omitempty"`
	Schedule      *TimerSchedule `json:"schedule"`
	Start         string         `json:"start,omitempty"`
	End           string         `json:"end,omitempty"`
	TimeoutMethod *NamedMethod   `json:"timeoutMethod,omitempty"`
	Persistent    *bool          `json:"persistent,omitempty"`
	Timezone      string         `json:"timezone,omitempty"`
	Info          string         `json:"info,omitempty"`
}

type ConcurrentMethod struct {
	ID            string              `json:"id,omitempty"`
	Method        *NamedMethod        `json:"method"`
	Lock          ConcurrencyLockType `json:"lock,omitempty"`
	AccessTimeout *Timeout            `json:"accessTimeout,omitempty"`
}

type InitMethod struct {
	ID           string       `json:"id,omitempty"`
	CreateMethod *NamedMethod `json:"createMethod"`
	BeanMethod   *NamedMethod `json:"beanMethod"`
}

type RemoveMethod struct {
	ID                string       `json:"id,omitempty"`
	BeanMethod        *NamedMethod `json:"beanMethod"`
	RetainIfException *bool        `json:"retainIfException,omitempty"`
}

type AsyncMethod struct {
	ID           string        `json:"id,omitempty"`
	MethodName   string        `json:"methodName"`
	MethodParams *MethodParams `json:"methodParams,omitempty"`
}

var methodParamsSchema = binding.NewSchema[MethodParams](typeName("method-paramsType"),
	binding.ID(func(m *MethodParams) *string { return &m.ID }),
	binding.Scalars("method-param", binding.CollapsedString, func(m *MethodParams) *[]string { return &m.Params }),
)

var namedMethodSchema = binding.NewSchema[NamedMethod](typeName("named-methodType"),
	binding.ID(func(m *NamedMethod) *string { return &m.ID }),
	binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(m *NamedMethod) *string { return &m.MethodName })),
	binding.One("method-params", methodParamsSchema, func(m *NamedMethod) **MethodParams { return &m.MethodParams }),
)

var aroundInvokeSchema = binding.NewSchema[AroundInvoke](typeName("around-invokeType"),
	binding.Scalar("class", binding.CollapsedString, func(a *AroundInvoke) *string { return &a.Class }),
	binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(a *AroundInvoke) *string { return &a.MethodName })),
)

var aroundTimeoutSchema = binding.NewSchema[AroundTimeout](typeName("around-timeoutType"),
	binding.Scalar("class", binding.CollapsedString, func(a *AroundTimeout) *string { return &a.Class }),
	binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(a *AroundTimeout) *string { return &a.MethodName })),
)

var timeoutSchema = binding.NewSchema[Timeout](typeName("access-timeoutType"),
	binding.ID(func(t *Timeout) *string { return &t.ID }),
	binding.Scalar("timeout", binding.Int, func(t *Timeout) **int { return &t.Timeout }),
	binding.Required(binding.Scalar("unit", timeUnits, func(t *Timeout) *TimeUnit { return &t.Unit })),
)

var timerScheduleSchema = binding.NewSchema[TimerSchedule](typeName("timer-scheduleType"),
	binding.ID(func(s *TimerSchedule) *string { return &s.ID }),
	binding.Scalar("second", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.Second }),
	binding.Scalar("minute", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.Minute }),
	binding.Scalar("hour", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.Hour }),
	binding.Scalar("day-of-month", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.DayOfMonth }),
	binding.Scalar("month", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.Month }),
	binding.Scalar("day-of-week", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.DayOfWeek }),
	binding.Scalar("year", binding.CollapsedString, func(s *TimerSchedule) *string { return &s.Year }),
)

var timerSchema = binding.NewSchema[Timer](typeName("timerType"), binding.Fields(
	[]binding.Field[Timer]{binding.ID(func(t *Timer) *string { return &t.ID })},
	descriptionFields(func(t *Timer) *[]*Text { return &t.Descriptions }),
	[]binding.Field[Timer]{
		binding.One("schedule", timerScheduleSchema, func(t *Timer) **TimerSchedule { return &t.Schedule }),
		binding.Scalar("start", binding.CollapsedString, func(t *Timer) *string { return &t.Start }),
		binding.Scalar("end", binding.CollapsedString, func(t *Timer) *string { return &t.End }),
		binding.One("timeout-method", namedMethodSchema, func(t *Timer) **NamedMethod { return &t.TimeoutMethod }),
		binding.Scalar("persistent", binding.Boolean, func(t *Timer) **bool { return &t.Persistent }),
		binding.Scalar("timezone", binding.CollapsedString, func(t *Timer) *string { return &t.Timezone }),
		binding.Scalar("info", binding.CollapsedString, func(t *Timer) *string { return &t.Info }),
	},
)...)

var concurrentMethodSchema = binding.NewSchema[ConcurrentMethod](typeName("concurrent-methodType"),
	binding.ID(func(m *ConcurrentMethod) *string { return &m.ID }),
	binding.One("method", namedMethodSchema, func(m *ConcurrentMethod) **NamedMethod { return &m.Method }),
	binding.Scalar("lock", lockTypes, func(m *ConcurrentMethod) *ConcurrencyLockType { return &m.Lock }),
	binding.One("access-timeout", timeoutSchema, func(m *ConcurrentMethod) **Timeout { return &m.AccessTimeout }),
)

var initMethodSchema = binding.NewSchema[InitMethod](typeName("init-methodType"),
	binding.ID(func(m *InitMethod) *string { return &m.ID }),
	binding.One("create-method", namedMethodSchema, func(m *InitMethod) **NamedMethod { return &m.CreateMethod }),
	binding.One("bean-method", namedMethodSchema, func(m *InitMethod) **NamedMethod { return &m.BeanMethod }),
)

var removeMethodSchema = binding.NewSchema[RemoveMethod](typeName("remove-methodType"),
	binding.ID(func(m *RemoveMethod) *string { return &m.ID }),
	binding.One("bean-method", namedMethodSchema, func(m *RemoveMethod) **NamedMethod { return &m.BeanMethod }),
	binding.Scalar("retain-if-exception", binding.Boolean, func(m *RemoveMethod) **bool { return &m.RetainIfException }),
)

var asyncMethodSchema = binding.NewSchema[AsyncMethod](typeName("async-methodType"),
	binding.ID(func(m *AsyncMethod) *string { return &m.ID }),
	binding.Required(binding.Scalar("method-name", binding.CollapsedString, func(m *AsyncMethod) *string { return &m.MethodName })),
	binding.One("method-params", methodParamsSchema, func(m *AsyncMethod) **MethodParams { return &m.MethodParams }),
)
