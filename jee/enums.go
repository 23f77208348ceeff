package jee

import "github.com/dhamidi/jeedd/binding"

type SessionType string

const (
	SessionStateful  SessionType = "Stateful"
	SessionStateless SessionType = "Stateless"
	SessionSingleton SessionType = "Singleton"
)

type TransactionType string

const (
	TransactionBean      TransactionType = "Bean"
	TransactionContainer TransactionType = "Container"
)

type ConcurrencyManagementType string

const (
	ConcurrencyBean      ConcurrencyManagementType = "Bean"
	ConcurrencyContainer ConcurrencyManagementType = "Container"
)

type ConcurrencyLockType string

const (
	LockRead  ConcurrencyLockType = "Read"
	LockWrite ConcurrencyLockType = "Write"
)

type PersistenceType string

const (
	PersistenceBean      PersistenceType = "Bean"
	PersistenceContainer PersistenceType = "Container"
)

type CmpVersion string

const (
	Cmp1 CmpVersion = "1.x"
	Cmp2 CmpVersion = "2.x"
)

type ResAuth string

const (
	ResAuthApplication ResAuth = "Application"
	ResAuthContainer   ResAuth = "Container"
)

type ResSharingScope string

const (
	Shareable   ResSharingScope = "Shareable"
	Unshareable ResSharingScope = "Unshareable"
)

type PersistenceContextType string

const (
	PersistenceContextTransaction PersistenceContextType = "Transaction"
	PersistenceContextExtended    PersistenceContextType = "Extended"
)

type TransAttribute string

const (
	TransNotSupported TransAttribute = "NotSupported"
	TransSupports     TransAttribute = "Supports"
	TransRequired     TransAttribute = "Required"
	TransRequiresNew  TransAttribute = "RequiresNew"
	TransMandatory    TransAttribute = "Mandatory"
	TransNever        TransAttribute = "Never"
)

type MethodIntf string

const (
	IntfHome            MethodIntf = "Home"
	IntfRemote          MethodIntf = "Remote"
	IntfLocalHome       MethodIntf = "LocalHome"
	IntfLocal           MethodIntf = "Local"
	IntfServiceEndpoint MethodIntf = "ServiceEndpoint"
	IntfTimer           MethodIntf = "Timer"
	IntfMessageEndpoint MethodIntf = "MessageEndpoint"
)

type Multiplicity string

const (
	MultiplicityOne  Multiplicity = "One"
	MultiplicityMany Multiplicity = "Many"
)

type TimeUnit string

const (
	Days         TimeUnit = "Days"
	Hours        TimeUnit = "Hours"
	Minutes      TimeUnit = "Minutes"
	Seconds      TimeUnit = "Seconds"
	Milliseconds TimeUnit = "Milliseconds"
	Microseconds TimeUnit = "Microseconds"
	Nanoseconds  TimeUnit = "Nanoseconds"
)

type Dispatcher string

const (
	DispatchForward Dispatcher = "FORWARD"
	DispatchInclude Dispatcher = "INCLUDE"
	DispatchRequest Dispatcher = "REQUEST"
	DispatchAsync   Dispatcher = "ASYNC"
	DispatchError   Dispatcher = "ERROR"
)

type TransportGuarantee string

const (
	GuaranteeNone         TransportGuarantee = "NONE"
	GuaranteeIntegral     TransportGuarantee = "INTEGRAL"
	GuaranteeConfidential TransportGuarantee = "CONFIDENTIAL"
)

type TrackingMode string

const (
	TrackCookie TrackingMode = "COOKIE"
	TrackURL    TrackingMode = "URL"
	TrackSSL    TrackingMode = "SSL"
)

type IsolationLevel string

const (
	ReadUncommitted IsolationLevel = "TRANSACTION_READ_UNCOMMITTED"
	ReadCommitted   IsolationLevel = "TRANSACTION_READ_COMMITTED"
	RepeatableRead  IsolationLevel = "TRANSACTION_REPEATABLE_READ"
	Serializable    IsolationLevel = "TRANSACTION_SERIALIZABLE"
)

type EjbRefType string

const (
	EjbRefSession EjbRefType = "Session"
	EjbRefEntity  EjbRefType = "Entity"
)

type MessageDestinationUsage string

const (
	Consumes         MessageDestinationUsage = "Consumes"
	Produces         MessageDestinationUsage = "Produces"
	ConsumesProduces MessageDestinationUsage = "ConsumesProduces"
)

type ResultTypeMapping string

const (
	ResultLocal  ResultTypeMapping = "Local"
	ResultRemote ResultTypeMapping = "Remote"
)

var (
	sessionTypes        = binding.Enum("session-type", SessionStateful, SessionStateless, SessionSingleton)
	transactionTypes    = binding.Enum("transaction-type", TransactionBean, TransactionContainer)
	concurrencyTypes    = binding.Enum("concurrency-management-type", ConcurrencyBean, ConcurrencyContainer)
	lockTypes           = binding.Enum("concurrent-lock-type", LockRead, LockWrite)
	persistenceTypes    = binding.Enum("persistence-type", PersistenceBean, PersistenceContainer)
	cmpVersions         = binding.Enum("cmp-version", Cmp1, Cmp2)
	resAuths            = binding.Enum("res-auth", ResAuthApplication, ResAuthContainer)
	resSharingScopes    = binding.Enum("res-sharing-scope", Shareable, Unshareable)
	persistenceCtxTypes = binding.Enum("persistence-context-type", PersistenceContextTransaction, PersistenceContextExtended)
	transAttributes     = binding.Enum("trans-attribute", TransNotSupported, TransSupports, TransRequired, TransRequiresNew, TransMandatory, TransNever)
	methodIntfs         = binding.Enum("method-intf", IntfHome, IntfRemote, IntfLocalHome, IntfLocal, IntfServiceEndpoint, IntfTimer, IntfMessageEndpoint)
	multiplicities      = binding.Enum("multiplicity", MultiplicityOne, MultiplicityMany)
	timeUnits           = binding.Enum("time-unit", Days, Hours, Minutes, Seconds, Milliseconds, Microseconds, Nanoseconds)
	dispatchers         = binding.Enum("dispatcher", DispatchForward, DispatchInclude, DispatchRequest, DispatchAsync, DispatchError)
	transportGuarantees = binding.Enum("transport-guarantee", GuaranteeNone, GuaranteeIntegral, GuaranteeConfidential)
	trackingModes       = binding.Enum("tracking-mode", TrackCookie, TrackURL, TrackSSL)
	isolationLevels     = binding.Enum("isolation-level", ReadUncommitted, ReadCommitted, RepeatableRead, Serializable)
	ejbRefTypes         = binding.Enum("ejb-ref-type", EjbRefSession, EjbRefEntity)
	destinationUsages   = binding.Enum("message-destination-usage", Consumes, Produces, ConsumesProduces)
	resultTypeMappings  = binding.Enum("result-type-mapping", ResultLocal, ResultRemote)
)
