package jee

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/jeedd/binding"
)

type ParamValue struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	Name         string  `json:"name"`
	Value        string  `json:"value"`
}

type Filter struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	Name           string        `json:"name"`
	Class          string        `json:"class,omitempty"`
	AsyncSupported *bool         `json:"asyncSupported,omitempty"`
	InitParams     []*ParamValue `json:"initParams,omitempty"`
}

type FilterMapping struct {
	ID           string       `json:"id,omitempty"`
	FilterName   string       `json:"filterName"`
	URLPatterns  []string     `json:"urlPatterns,omitempty"`
	ServletNames []string     `json:"servletNames,omitempty"`
	Dispatchers  []Dispatcher `json:"dispatchers,omitempty"`
}

type Listener struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	Class string `json:"class"`
}

type MultipartConfig struct {
	Location          string `json:"location,omitempty"`
	MaxFileSize       *int   `json:"maxFileSize,omitempty"`
	MaxRequestSize    *int   `json:"maxRequestSize,omitempty"`
	FileSizeThreshold *int   `json:"fileSizeThreshold,omitempty"`
}

type Servlet struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	Name             string             `json:"name"`
	Class            string             `json:"class,omitempty"`
	JspFile          string             `json:"jspFile,omitempty"`
	InitParams       []*ParamValue      `json:"initParams,omitempty"`
	LoadOnStartup    *int               `json:"loadOnStartup,omitempty"`
	Enabled          *bool              `json:"enabled,omitempty"`
	AsyncSupported   *bool              `json:"asyncSupported,omitempty"`
	RunAs            *RunAs             `json:"runAs,omitempty"`
	SecurityRoleRefs []*SecurityRoleRef `json:"securityRoleRefs,omitempty"`
	MultipartConfig  *MultipartConfig   `json:"multipartConfig,omitempty"`
}

type ServletMapping struct {
	ID          string   `json:"id,omitempty"`
	ServletName string   `json:"servletName"`
	URLPatterns []string `json:"urlPatterns,omitempty"`
}

type CookieConfig struct {
	Name     string `json:"name,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Path     string `json:"path,omitempty"`
	Comment  string `json:"comment,omitempty"`
	HTTPOnly *bool  `json:"httpOnly,omitempty"`
	Secure   *bool  `json:"secure,omitempty"`
	MaxAge   *int   `json:"maxAge,omitempty"`
}

type SessionConfig struct {
	SessionTimeout *int           `json:"sessionTimeout,omitempty"`
	CookieConfig   *CookieConfig  `json:"cookieConfig,omitempty"`
	TrackingModes  []TrackingMode `json:"trackingModes,omitempty"`
}

type MimeMapping struct {
	ID        string `json:"id,omitempty"`
	Extension string `json:"extension"`
	MimeType  string `json:"mimeType"`
}

type WelcomeFileList struct {
	ID           string   `json:"id,omitempty"`
	WelcomeFiles []string `json:"welcomeFiles,omitempty"`
}

type ErrorPage struct {
	ID            string `json:"id,omitempty"`
	ErrorCode     *int   `json:"errorCode,omitempty"`
	ExceptionType string `json:"exceptionType,omitempty"`
	Location      string `json:"location"`
}

type Taglib struct {
	ID             string `json:"id,omitempty"`
	TaglibURI      string `json:"taglibURI"`
	TaglibLocation string `json:"taglibLocation"`
}

type JspPropertyGroup struct {
	ID string `json:"id,omitempty"`
	DescriptionGroup
	URLPatterns                    []string `json:"urlPatterns,omitempty"`
	ElIgnored                      *bool    `json:"elIgnored,omitempty"`
	PageEncoding                   string   `json:"pageEncoding,omitempty"`
	ScriptingInvalid               *bool    `json:"scriptingInvalid,omitempty"`
	IsXML                          *bool    `json:"isXML,omitempty"`
	IncludePreludes                []string `json:"includePreludes,omitempty"`
	IncludeCodas                   []string `json:"includeCodas,omitempty"`
	DeferredSyntaxAllowedAsLiteral *bool    `json:"deferredSyntaxAllowedAsLiteral,omitempty"`
	TrimDirectiveWhitespaces       *bool    `json:"trimDirectiveWhitespaces,omitempty"`
	DefaultContentType             string   `json:"defaultContentType,omitempty"`
	Buffer                         string   `json:"buffer,omitempty"`
	ErrorOnUndeclaredNamespace     *bool    `json:"errorOnUndeclaredNamespace,omitempty"`
}

type JspConfig struct {
	ID                string              `json:"id,omitempty"`
	Taglibs           []*Taglib           `json:"taglibs,omitempty"`
	JspPropertyGroups []*JspPropertyGroup `json:"jspPropertyGroups,omitempty"`
}

type WebResourceCollection struct {
	ID                  string   `json:"id,omitempty"`
	Name                string   `json:"name"`
	Descriptions        []*Text  `json:"descriptions,omitempty"`
	URLPatterns         []string `json:"urlPatterns,omitempty"`
	HTTPMethods         []string `json:"httpMethods,omitempty"`
	HTTPMethodOmissions []string `json:"httpMethodOmissions,omitempty"`
}

type AuthConstraint struct {
	ID           string   `json:"id,omitempty"`
	Descriptions []*Text  `json:"descriptions,omitempty"`
	RoleNames    []string `json:"roleNames,omitempty"`
}

type UserDataConstraint struct {
	ID                 string             `json:"id,omitempty"`
	Descriptions       []*Text            `json:"descriptions,omitempty"`
	TransportGuarantee TransportGuarantee `json:"transportGuarantee"`
}

type SecurityConstraint struct {
	ID                     string                   `json:"id,omitempty"`
	DisplayNames           []*Text                  `json:"displayNames,omitempty"`
	WebResourceCollections []*WebResourceCollection `json:"webResourceCollections"`
	AuthConstraint         *AuthConstraint          `json:"authConstraint,omitempty"`
	UserDataConstraint     *UserDataConstraint      `json:"userDataConstraint,omitempty"`
}

type FormLoginConfig struct {
	ID            string `json:"id,omitempty"`
	FormLoginPage string `json:"formLoginPage"`
	FormErrorPage string `json:"formErrorPage"`
}

type LoginConfig struct {
	ID              string           `json:"id,omitempty"`
	AuthMethod      string           `json:"authMethod,omitempty"`
	RealmName       string           `json:"realmName,omitempty"`
	FormLoginConfig *FormLoginConfig `json:"formLoginConfig,omitempty"`
}

type LocaleEncodingMapping struct {
	ID       string `json:"id,omitempty"`
	Locale   string `json:"locale"`
	Encoding string `json:"encoding"`
}

type LocaleEncodingMappingList struct {
	ID       string                   `json:"id,omitempty"`
	Mappings []*LocaleEncodingMapping `json:"mappings"`
}

// AbsoluteOrdering lists fragment names; Others stands for every fragment
// not named.
type AbsoluteOrdering struct {
	Names  []string `json:"names,omitempty"`
	Others *Empty   `json:"others,omitempty"`
}

// WebComponents holds the content web.xml and web-fragment.xml share.
type WebComponents struct {
	DescriptionGroup
	Distributable              *Empty                       `json:"distributable,omitempty"`
	ContextParams              []*ParamValue                `json:"contextParams,omitempty"`
	Filters                    []*Filter                    `json:"filters,omitempty"`
	FilterMappings             []*FilterMapping             `json:"filterMappings,omitempty"`
	Listeners                  []*Listener                  `json:"listeners,omitempty"`
	Servlets                   []*Servlet                   `json:"servlets,omitempty"`
	ServletMappings            []*ServletMapping            `json:"servletMappings,omitempty"`
	SessionConfigs             []*SessionConfig             `json:"sessionConfigs,omitempty"`
	MimeMappings               []*MimeMapping               `json:"mimeMappings,omitempty"`
	WelcomeFileLists           []*WelcomeFileList           `json:"welcomeFileLists,omitempty"`
	ErrorPages                 []*ErrorPage                 `json:"errorPages,omitempty"`
	JspConfigs                 []*JspConfig                 `json:"jspConfigs,omitempty"`
	SecurityConstraints        []*SecurityConstraint        `json:"securityConstraints,omitempty"`
	LoginConfigs               []*LoginConfig               `json:"loginConfigs,omitempty"`
	SecurityRoles              []*SecurityRole              `json:"securityRoles,omitempty"`
	LocaleEncodingMappingLists []*LocaleEncodingMappingList `json:"localeEncodingMappingLists,omitempty"`
	JndiEnvironment
	MessageDestinations *binding.Keyed[MessageDestination] `json:"messageDestinations,omitempty"`
}

// Servlet returns the servlet named name.
func (w *WebComponents) Servlet(name string) (*Servlet, bool) {
	for _, s := range w.Servlets {
		if s != nil && s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// WebApp is the root of web.xml.
type WebApp struct {
	ID               string `json:"id,omitempty"`
	MetadataComplete *bool  `json:"metadataComplete,omitempty"`
	Version          string `json:"version,omitempty"`
	WebComponents
	Taglibs          []*Taglib         `json:"taglibs,omitempty"`
	AbsoluteOrdering *AbsoluteOrdering `json:"absoluteOrdering,omitempty"`
	ModuleName       string            `json:"moduleName,omitempty"`
}

// loadOnStartup reads load-on-startup, where "true" stands for 1 and
// "false" or an empty element for unset.
type loadOnStartup struct{}

func (loadOnStartup) Unmarshal(text string) (*int, error) {
	switch v := binding.Collapse(text); v {
	case "", "false":
		return nil, nil
	case "true":
		return binding.IntPtr(1), nil
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse load-on-startup: %w", err)
		}
		return &n, nil
	}
}

func (loadOnStartup) Marshal(v *int) (string, bool, error) {
	return binding.Int.Marshal(v)
}

func (loadOnStartup) String() string { return "load-on-startup" }

var paramValueSchema = binding.NewSchema[ParamValue](typeName("param-valueType"), binding.Fields(
	[]binding.Field[ParamValue]{binding.ID(func(p *ParamValue) *string { return &p.ID })},
	descriptionFields(func(p *ParamValue) *[]*Text { return &p.Descriptions }),
	[]binding.Field[ParamValue]{
		binding.Required(binding.Scalar("param-name", binding.CollapsedString, func(p *ParamValue) *string { return &p.Name })),
		binding.Required(binding.Scalar("param-value", binding.String, func(p *ParamValue) *string { return &p.Value })),
	},
)...)

var filterSchema = binding.NewSchema[Filter](typeName("filterType"), binding.Fields(
	[]binding.Field[Filter]{binding.ID(func(f *Filter) *string { return &f.ID })},
	descriptionGroupFields(func(f *Filter) *DescriptionGroup { return &f.DescriptionGroup }),
	[]binding.Field[Filter]{
		binding.Required(binding.Scalar("filter-name", binding.CollapsedString, func(f *Filter) *string { return &f.Name })),
		binding.Scalar("filter-class", binding.CollapsedString, func(f *Filter) *string { return &f.Class }),
		binding.Scalar("async-supported", binding.Boolean, func(f *Filter) **bool { return &f.AsyncSupported }),
		binding.Many("init-param", paramValueSchema, func(f *Filter) *[]*ParamValue { return &f.InitParams }),
	},
)...)

var filterMappingSchema = binding.NewSchema[FilterMapping](typeName("filter-mappingType"),
	binding.ID(func(m *FilterMapping) *string { return &m.ID }),
	binding.Required(binding.Scalar("filter-name", binding.CollapsedString, func(m *FilterMapping) *string { return &m.FilterName })),
	binding.Scalars("url-pattern", binding.String, func(m *FilterMapping) *[]string { return &m.URLPatterns }),
	binding.Scalars("servlet-name", binding.CollapsedString, func(m *FilterMapping) *[]string { return &m.ServletNames }),
	binding.Scalars("dispatcher", dispatchers, func(m *FilterMapping) *[]Dispatcher { return &m.Dispatchers }),
)

var listenerSchema = binding.NewSchema[Listener](typeName("listenerType"), binding.Fields(
	[]binding.Field[Listener]{binding.ID(func(l *Listener) *string { return &l.ID })},
	descriptionGroupFields(func(l *Listener) *DescriptionGroup { return &l.DescriptionGroup }),
	[]binding.Field[Listener]{
		binding.Required(binding.Scalar("listener-class", binding.CollapsedString, func(l *Listener) *string { return &l.Class })),
	},
)...)

var multipartConfigSchema = binding.NewSchema[MultipartConfig](typeName("multipart-configType"),
	binding.Scalar("location", binding.CollapsedString, func(m *MultipartConfig) *string { return &m.Location }),
	binding.Scalar("max-file-size", binding.Int, func(m *MultipartConfig) **int { return &m.MaxFileSize }),
	binding.Scalar("max-request-size", binding.Int, func(m *MultipartConfig) **int { return &m.MaxRequestSize }),
	binding.Scalar("file-size-threshold", binding.Int, func(m *MultipartConfig) **int { return &m.FileSizeThreshold }),
)

var servletSchema = binding.NewSchema[Servlet](typeName("servletType"), binding.Fields(
	[]binding.Field[Servlet]{binding.ID(func(s *Servlet) *string { return &s.ID })},
	descriptionGroupFields(func(s *Servlet) *DescriptionGroup { return &s.DescriptionGroup }),
	[]binding.Field[Servlet]{
		binding.Required(binding.Scalar("servlet-name", binding.CollapsedString, func(s *Servlet) *string { return &s.Name })),
		binding.Scalar("servlet-class", binding.CollapsedString, func(s *Servlet) *string { return &s.Class }),
		binding.Scalar("jsp-file", binding.CollapsedString, func(s *Servlet) *string { return &s.JspFile }),
		binding.Many("init-param", paramValueSchema, func(s *Servlet) *[]*ParamValue { return &s.InitParams }),
		binding.Scalar[Servlet, *int]("load-on-startup", loadOnStartup{}, func(s *Servlet) **int { return &s.LoadOnStartup }),
		binding.Scalar("enabled", binding.Boolean, func(s *Servlet) **bool { return &s.Enabled }),
		binding.Scalar("async-supported", binding.Boolean, func(s *Servlet) **bool { return &s.AsyncSupported }),
		binding.One("run-as", runAsSchema, func(s *Servlet) **RunAs { return &s.RunAs }),
		binding.Many("security-role-ref", securityRoleRefSchema, func(s *Servlet) *[]*SecurityRoleRef { return &s.SecurityRoleRefs }),
		binding.One("multipart-config", multipartConfigSchema, func(s *Servlet) **MultipartConfig { return &s.MultipartConfig }),
	},
)...)

var servletMappingSchema = binding.NewSchema[ServletMapping](typeName("servlet-mappingType"),
	binding.ID(func(m *ServletMapping) *string { return &m.ID }),
	binding.Required(binding.Scalar("servlet-name", binding.CollapsedString, func(m *ServletMapping) *string { return &m.ServletName })),
	binding.Scalars("url-pattern", binding.String, func(m *ServletMapping) *[]string { return &m.URLPatterns }),
)

var cookieConfigSchema = binding.NewSchema[CookieConfig](typeName("cookie-configType"),
	binding.Scalar("name", binding.CollapsedString, func(c *CookieConfig) *string { return &c.Name }),
	binding.Scalar("domain", binding.CollapsedString, func(c *CookieConfig) *string { return &c.Domain }),
	binding.Scalar("path", binding.CollapsedString, func(c *CookieConfig) *string { return &c.Path }),
	binding.Scalar("comment", binding.CollapsedString, func(c *CookieConfig) *string { return &c.Comment }),
	binding.Scalar("http-only", binding.Boolean, func(c *CookieConfig) **bool { return &c.HTTPOnly }),
	binding.Scalar("secure", binding.Boolean, func(c *CookieConfig) **bool { return &c.Secure }),
	binding.Scalar("max-age", binding.Int, func(c *CookieConfig) **int { return &c.MaxAge }),
)

var sessionConfigSchema = binding.NewSchema[SessionConfig](typeName("session-configType"),
	binding.Scalar("session-timeout", binding.Int, func(s *SessionConfig) **int { return &s.SessionTimeout }),
	binding.One("cookie-config", cookieConfigSchema, func(s *SessionConfig) **CookieConfig { return &s.CookieConfig }),
	binding.Scalars("tracking-mode", trackingModes, func(s *SessionConfig) *[]TrackingMode { return &s.TrackingModes }),
)

var mimeMappingSchema = binding.NewSchema[MimeMapping](typeName("mime-mappingType"),
	binding.ID(func(m *MimeMapping) *string { return &m.ID }),
	binding.Required(binding.Scalar("extension", binding.CollapsedString, func(m *MimeMapping) *string { return &m.Extension })),
	binding.Required(binding.Scalar("mime-type", binding.CollapsedString, func(m *MimeMapping) *string { return &m.MimeType })),
)

var welcomeFileListSchema = binding.NewSchema[WelcomeFileList](typeName("welcome-file-listType"),
	binding.ID(func(l *WelcomeFileList) *string { return &l.ID }),
	binding.Scalars("welcome-file", binding.CollapsedString, func(l *WelcomeFileList) *[]string { return &l.WelcomeFiles }),
)

var errorPageSchema = binding.NewSchema[ErrorPage](typeName("error-pageType"),
	binding.ID(func(e *ErrorPage) *string { return &e.ID }),
	binding.Scalar("error-code", binding.Int, func(e *ErrorPage) **int { return &e.ErrorCode }),
	binding.Scalar("exception-type", binding.CollapsedString, func(e *ErrorPage) *string { return &e.ExceptionType }),
	binding.Required(binding.Scalar("location", binding.CollapsedString, func(e *ErrorPage) *string { return &e.Location })),
)

var taglibSchema = binding.NewSchema[Taglib](typeName("taglibType"),
	binding.ID(func(t *Taglib) *string { return &t.ID }),
	binding.Required(binding.Scalar("taglib-uri", binding.CollapsedString, func(t *Taglib) *string { return &t.TaglibURI })),
	binding.Required(binding.Scalar("taglib-location", binding.CollapsedString, func(t *Taglib) *string { return &t.TaglibLocation })),
)

var jspPropertyGroupSchema = binding.NewSchema[JspPropertyGroup](typeName("jsp-property-groupType"), binding.Fields(
	[]binding.Field[JspPropertyGroup]{binding.ID(func(g *JspPropertyGroup) *string { return &g.ID })},
	descriptionGroupFields(func(g *JspPropertyGroup) *DescriptionGroup { return &g.DescriptionGroup }),
	[]binding.Field[JspPropertyGroup]{
		binding.Scalars("url-pattern", binding.String, func(g *JspPropertyGroup) *[]string { return &g.URLPatterns }),
		binding.Scalar("el-ignored", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.ElIgnored }),
		binding.Scalar("page-encoding", binding.CollapsedString, func(g *JspPropertyGroup) *string { return &g.PageEncoding }),
		binding.Scalar("scripting-invalid", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.ScriptingInvalid }),
		binding.Scalar("is-xml", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.IsXML }),
		binding.Scalars("include-prelude", binding.CollapsedString, func(g *JspPropertyGroup) *[]string { return &g.IncludePreludes }),
		binding.Scalars("include-coda", binding.CollapsedString, func(g *JspPropertyGroup) *[]string { return &g.IncludeCodas }),
		binding.Scalar("deferred-syntax-allowed-as-literal", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.DeferredSyntaxAllowedAsLiteral }),
		binding.Scalar("trim-directive-whitespaces", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.TrimDirectiveWhitespaces }),
		binding.Scalar("default-content-type", binding.CollapsedString, func(g *JspPropertyGroup) *string { return &g.DefaultContentType }),
		binding.Scalar("buffer", binding.CollapsedString, func(g *JspPropertyGroup) *string { return &g.Buffer }),
		binding.Scalar("error-on-undeclared-namespace", binding.Boolean, func(g *JspPropertyGroup) **bool { return &g.ErrorOnUndeclaredNamespace }),
	},
)...)

var jspConfigSchema = binding.NewSchema[JspConfig](typeName("jsp-configType"),
	binding.ID(func(c *JspConfig) *string { return &c.ID }),
	binding.Many("taglib", taglibSchema, func(c *JspConfig) *[]*Taglib { return &c.Taglibs }),
	binding.Many("jsp-property-group", jspPropertyGroupSchema, func(c *JspConfig) *[]*JspPropertyGroup { return &c.JspPropertyGroups }),
)

var webResourceCollectionSchema = binding.NewSchema[WebResourceCollection](typeName("web-resource-collectionType"), binding.Fields(
	[]binding.Field[WebResourceCollection]{
		binding.ID(func(c *WebResourceCollection) *string { return &c.ID }),
		binding.Required(binding.Scalar("web-resource-name", binding.CollapsedString, func(c *WebResourceCollection) *string { return &c.Name })),
	},
	descriptionFields(func(c *WebResourceCollection) *[]*Text { return &c.Descriptions }),
	[]binding.Field[WebResourceCollection]{
		binding.Scalars("url-pattern", binding.String, func(c *WebResourceCollection) *[]string { return &c.URLPatterns }),
		binding.Scalars("http-method", binding.CollapsedString, func(c *WebResourceCollection) *[]string { return &c.HTTPMethods }),
		binding.Scalars("http-method-omission", binding.CollapsedString, func(c *WebResourceCollection) *[]string { return &c.HTTPMethodOmissions }),
	},
)...)

var authConstraintSchema = binding.NewSchema[AuthConstraint](typeName("auth-constraintType"), binding.Fields(
	[]binding.Field[AuthConstraint]{binding.ID(func(a *AuthConstraint) *string { return &a.ID })},
	descriptionFields(func(a *AuthConstraint) *[]*Text { return &a.Descriptions }),
	[]binding.Field[AuthConstraint]{
		binding.Scalars("role-name", binding.CollapsedString, func(a *AuthConstraint) *[]string { return &a.RoleNames }),
	},
)...)

var userDataConstraintSchema = binding.NewSchema[UserDataConstraint](typeName("user-data-constraintType"), binding.Fields(
	[]binding.Field[UserDataConstraint]{binding.ID(func(u *UserDataConstraint) *string { return &u.ID })},
	descriptionFields(func(u *UserDataConstraint) *[]*Text { return &u.Descriptions }),
	[]binding.Field[UserDataConstraint]{
		binding.Required(binding.Scalar("transport-guarantee", transportGuarantees, func(u *UserDataConstraint) *TransportGuarantee { return &u.TransportGuarantee })),
	},
)...)

var securityConstraintSchema = binding.NewSchema[SecurityConstraint](typeName("security-constraintType"),
	binding.ID(func(s *SecurityConstraint) *string { return &s.ID }),
	binding.Many("display-name", textSchema, func(s *SecurityConstraint) *[]*Text { return &s.DisplayNames }),
	binding.Many("web-resource-collection", webResourceCollectionSchema, func(s *SecurityConstraint) *[]*WebResourceCollection { return &s.WebResourceCollections }),
	binding.One("auth-constraint", authConstraintSchema, func(s *SecurityConstraint) **AuthConstraint { return &s.AuthConstraint }),
	binding.One("user-data-constraint", userDataConstraintSchema, func(s *SecurityConstraint) **UserDataConstraint { return &s.UserDataConstraint }),
)

var formLoginConfigSchema = binding.NewSchema[FormLoginConfig](typeName("form-login-configType"),
	binding.ID(func(f *FormLoginConfig) *string { return &f.ID }),
	binding.Required(binding.Scalar("form-login-page", binding.CollapsedString, func(f *FormLoginConfig) *string { return &f.FormLoginPage })),
	binding.Required(binding.Scalar("form-error-page", binding.CollapsedString, func(f *FormLoginConfig) *string { return &f.FormErrorPage })),
)

var loginConfigSchema = binding.NewSchema[LoginConfig](typeName("login-configType"),
	binding.ID(func(l *LoginConfig) *string { return &l.ID }),
	binding.Scalar("auth-method", binding.CollapsedString, func(l *LoginConfig) *string { return &l.AuthMethod }),
	binding.Scalar("realm-name", binding.CollapsedString, func(l *LoginConfig) *string { return &l.RealmName }),
	binding.One("form-login-config", formLoginConfigSchema, func(l *LoginConfig) **FormLoginConfig { return &l.FormLoginConfig }),
)

var localeEncodingMappingSchema = binding.NewSchema[LocaleEncodingMapping](typeName("locale-encoding-mappingType"),
	binding.ID(func(m *LocaleEncodingMapping) *string { return &m.ID }),
	binding.Required(binding.Scalar("locale", binding.CollapsedString, func(m *LocaleEncodingMapping) *string { return &m.Locale })),
	binding.Required(binding.Scalar("encoding", binding.CollapsedString, func(m *LocaleEncodingMapping) *string { return &m.Encoding })),
)

var localeEncodingMappingListSchema = binding.NewSchema[LocaleEncodingMappingList](typeName("locale-encoding-mapping-listType"),
	binding.ID(func(l *LocaleEncodingMappingList) *string { return &l.ID }),
	binding.Many("locale-encoding-mapping", localeEncodingMappingSchema, func(l *LocaleEncodingMappingList) *[]*LocaleEncodingMapping { return &l.Mappings }),
)

var absoluteOrderingSchema = binding.NewSchema[AbsoluteOrdering](typeName("absoluteOrderingType"),
	binding.Scalars("name", binding.CollapsedString, func(o *AbsoluteOrdering) *[]string { return &o.Names }),
	binding.One("others", emptySchema, func(o *AbsoluteOrdering) **Empty { return &o.Others }),
)

// webHeadFields maps description through error-page.
func webHeadFields[T any](get func(*T) *WebComponents) []binding.Field[T] {
	return binding.Fields(
		descriptionGroupFields(func(r *T) *DescriptionGroup { return &get(r).DescriptionGroup }),
		[]binding.Field[T]{
			binding.One("distributable", emptySchema, func(r *T) **Empty { return &get(r).Distributable }),
			binding.Many("context-param", paramValueSchema, func(r *T) *[]*ParamValue { return &get(r).ContextParams }),
			binding.Many("filter", filterSchema, func(r *T) *[]*Filter { return &get(r).Filters }),
			binding.Many("filter-mapping", filterMappingSchema, func(r *T) *[]*FilterMapping { return &get(r).FilterMappings }),
			binding.Many("listener", listenerSchema, func(r *T) *[]*Listener { return &get(r).Listeners }),
			binding.Many("servlet", servletSchema, func(r *T) *[]*Servlet { return &get(r).Servlets }),
			binding.Many("servlet-mapping", servletMappingSchema, func(r *T) *[]*ServletMapping { return &get(r).ServletMappings }),
			binding.Many("session-config", sessionConfigSchema, func(r *T) *[]*SessionConfig { return &get(r).SessionConfigs }),
			binding.Many("mime-mapping", mimeMappingSchema, func(r *T) *[]*MimeMapping { return &get(r).MimeMappings }),
			binding.Many("welcome-file-list", welcomeFileListSchema, func(r *T) *[]*WelcomeFileList { return &get(r).WelcomeFileLists }),
			binding.Many("error-page", errorPageSchema, func(r *T) *[]*ErrorPage { return &get(r).ErrorPages }),
		},
	)
}

// webBodyFields maps jsp-config through message-destination.
func webBodyFields[T any](get func(*T) *WebComponents) []binding.Field[T] {
	env := func(r *T) *JndiEnvironment { return &get(r).JndiEnvironment }
	return binding.Fields(
		[]binding.Field[T]{
			binding.Many("jsp-config", jspConfigSchema, func(r *T) *[]*JspConfig { return &get(r).JspConfigs }),
			binding.Many("security-constraint", securityConstraintSchema, func(r *T) *[]*SecurityConstraint { return &get(r).SecurityConstraints }),
			binding.Many("login-config", loginConfigSchema, func(r *T) *[]*LoginConfig { return &get(r).LoginConfigs }),
			binding.Many("security-role", securityRoleSchema, func(r *T) *[]*SecurityRole { return &get(r).SecurityRoles }),
			binding.Many("locale-encoding-mapping-list", localeEncodingMappingListSchema, func(r *T) *[]*LocaleEncodingMappingList { return &get(r).LocaleEncodingMappingLists }),
		},
		referenceFields(env),
		lifecycleFields(env),
		[]binding.Field[T]{
			binding.Indexed("message-destination", messageDestinationSchema, func(r *T) **binding.Keyed[MessageDestination] { return &get(r).MessageDestinations }),
		},
	)
}

var webAppSchema = binding.NewSchema[WebApp](typeName("web-appType"), binding.Fields(
	[]binding.Field[WebApp]{
		binding.ID(func(w *WebApp) *string { return &w.ID }),
		binding.Attr("metadata-complete", binding.Boolean, func(w *WebApp) **bool { return &w.MetadataComplete }),
		binding.Attr("version", binding.CollapsedString, func(w *WebApp) *string { return &w.Version }),
	},
	webHeadFields(func(w *WebApp) *WebComponents { return &w.WebComponents }),
	[]binding.Field[WebApp]{
		binding.Many("taglib", taglibSchema, func(w *WebApp) *[]*Taglib { return &w.Taglibs }),
	},
	webBodyFields(func(w *WebApp) *WebComponents { return &w.WebComponents }),
	[]binding.Field[WebApp]{
		binding.One("absolute-ordering", absoluteOrderingSchema, func(w *WebApp) **AbsoluteOrdering { return &w.AbsoluteOrdering }),
	},
	dataSourceFields(func(w *WebApp) *JndiEnvironment { return &w.JndiEnvironment }),
	[]binding.Field[WebApp]{
		binding.Scalar("module-name", binding.CollapsedString, func(w *WebApp) *string { return &w.ModuleName }),
	},
)...)
