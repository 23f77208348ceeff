package jee

import (
	"encoding/xml"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/xmlcursor"
)

// Namespace is the Java EE 5 and 6 deployment descriptor namespace.
const Namespace = "http://java.sun.com/xml/ns/javaee"

func typeName(local string) xml.Name {
	return xml.Name{Space: Namespace, Local: local}
}

// Text is a description or display name with an optional xml:lang.
type Text struct {
	Lang  string `json:"lang,omitempty"`
	Value string `json:"value"`
}

type Icon struct {
	ID        string `json:"id,omitempty"`
	Lang      string `json:"lang,omitempty"`
	SmallIcon string `json:"smallIcon,omitempty"`
	LargeIcon string `json:"largeIcon,omitempty"`
}

// Empty marks an element whose presence is the value, such as
// distributable or local-bean.
type Empty struct {
	ID string `json:"id,omitempty"`
}

// DescriptionGroup holds the description, display-name and icon elements
// that open most descriptor types.
type DescriptionGroup struct {
	Descriptions []*Text `json:"descriptions,omitempty"`
	DisplayNames []*Text `json:"displayNames,omitempty"`
	Icons        []*Icon `json:"icons,omitempty"`
}

type Property struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SecurityRole struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	RoleName     string  `json:"roleName"`
}

type SecurityRoleRef struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	RoleName     string  `json:"roleName"`
	RoleLink     string  `json:"roleLink,omitempty"`
}

type RunAs struct {
	ID           string  `json:"id,omitempty"`
	Descriptions []*Text `json:"descriptions,omitempty"`
	RoleName     string  `json:"roleName"`
}

// SecurityIdentity selects either the caller identity or a run-as role.
type SecurityIdentity struct {
	ID                string  `json:"id,omitempty"`
	Descriptions      []*Text `json:"descriptions,omitempty"`
	UseCallerIdentity *Empty  `json:"useCallerIdentity,omitempty"`
	RunAs             *RunAs  `json:"runAs,omitempty"`
}

var textSchema = binding.NewSchema[Text](typeName("descriptionType"),
	binding.AttrNS(xmlcursor.XMLNamespace, "lang", binding.CollapsedString, func(t *Text) *string { return &t.Lang }),
	binding.Value(binding.String, func(t *Text) *string { return &t.Value }),
)

var iconSchema = binding.NewSchema[Icon](typeName("iconType"),
	binding.ID(func(i *Icon) *string { return &i.ID }),
	binding.AttrNS(xmlcursor.XMLNamespace, "lang", binding.CollapsedString, func(i *Icon) *string { return &i.Lang }),
	binding.Scalar("small-icon", binding.CollapsedString, func(i *Icon) *string { return &i.SmallIcon }),
	binding.Scalar("large-icon", binding.CollapsedString, func(i *Icon) *string { return &i.LargeIcon }),
)

var emptySchema = binding.NewSchema[Empty](typeName("emptyType"),
	binding.ID(func(e *Empty) *string { return &e.ID }),
)

var propertySchema = binding.NewSchema[Property](typeName("propertyType"),
	binding.ID(func(p *Property) *string { return &p.ID }),
	binding.Required(binding.Scalar("name", binding.CollapsedString, func(p *Property) *string { return &p.Name })),
	binding.Required(binding.Scalar("value", binding.String, func(p *Property) *string { return &p.Value })),
)

var securityRoleSchema = binding.NewSchema[SecurityRole](typeName("security-roleType"), binding.Fields(
	[]binding.Field[SecurityRole]{binding.ID(func(r *SecurityRole) *string { return &r.ID })},
	descriptionFields(func(r *SecurityRole) *[]*Text { return &r.Descriptions }),
	[]binding.Field[SecurityRole]{
		binding.Required(binding.Scalar("role-name", binding.CollapsedString, func(r *SecurityRole) *string { return &r.RoleName })),
	},
)...)

var securityRoleRefSchema = binding.NewSchema[SecurityRoleRef](typeName("security-role-refType"), binding.Fields(
	[]binding.Field[SecurityRoleRef]{binding.ID(func(r *SecurityRoleRef) *string { return &r.ID })},
	descriptionFields(func(r *SecurityRoleRef) *[]*Text { return &r.Descriptions }),
	[]binding.Field[SecurityRoleRef]{
		binding.Required(binding.Scalar("role-name", binding.CollapsedString, func(r *SecurityRoleRef) *string { return &r.RoleName })),
		binding.Scalar("role-link", binding.CollapsedString, func(r *SecurityRoleRef) *string { return &r.RoleLink }),
	},
)...)

var runAsSchema = binding.NewSchema[RunAs](typeName("run-asType"), binding.Fields(
	[]binding.Field[RunAs]{binding.ID(func(r *RunAs) *string { return &r.ID })},
	descriptionFields(func(r *RunAs) *[]*Text { return &r.Descriptions }),
	[]binding.Field[RunAs]{
		binding.Required(binding.Scalar("role-name", binding.CollapsedString, func(r *RunAs) *string { return &r.RoleName })),
	},
)...)

var securityIdentitySchema = binding.NewSchema[SecurityIdentity](typeName("security-identityType"), binding.Fields(
	[]binding.Field[SecurityIdentity]{binding.ID(func(s *SecurityIdentity) *string { return &s.ID })},
	descriptionFields(func(s *SecurityIdentity) *[]*Text { return &s.Descriptions }),
	[]binding.Field[SecurityIdentity]{
		binding.One("use-caller-identity", emptySchema, func(s *SecurityIdentity) **Empty { return &s.UseCallerIdentity }),
		binding.One("run-as", runAsSchema, func(s *SecurityIdentity) **RunAs { return &s.RunAs }),
	},
)...)

func descriptionFields[T any](get func(*T) *[]*Text) []binding.Field[T] {
	return []binding.Field[T]{
		binding.Many("description", textSchema, get),
	}
}

func descriptionGroupFields[T any](get func(*T) *DescriptionGroup) []binding.Field[T] {
	return []binding.Field[T]{
		binding.Many("description", textSchema, func(r *T) *[]*Text { return &get(r).Descriptions }),
		binding.Many("display-name", textSchema, func(r *T) *[]*Text { return &get(r).DisplayNames }),
		binding.Many("icon", iconSchema, func(r *T) *[]*Icon { return &get(r).Icons }),
	}
}
