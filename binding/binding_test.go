package binding

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jeedd/xmlcursor"
)

const testNS = "urn:jeedd:test"

func qn(local string) xml.Name {
	return xml.Name{Space: testNS, Local: local}
}

type color string

var colors = Enum[color]("color", "red", "green")

type entry struct {
	ID      string
	Name    string
	Value   string
	Enabled *bool
}

func (e *entry) Key() string { return e.Name }
func (*entry) isMember()     {}

type bean struct {
	Kind      string
	ID        string
	Name      string
	Color     color
	Count     *int
	Startup   *bool
	Tags      []string
	Locals    *Set
	Entries   *Keyed[entry]
	Steps     []*entry
	Owner     *entry
	DependsOn []string
}

func (*bean) isMember() {}

type member interface {
	isMember()
}

type holder struct {
	Members []member
}

var entrySchema = NewSchema[entry](qn("entryType"),
	ID(func(e *entry) *string { return &e.ID }),
	Required(Scalar("entry-name", CollapsedString, func(e *entry) *string { return &e.Name })),
	Scalar("entry-value", String, func(e *entry) *string { return &e.Value }),
	Scalar("enabled", Boolean, func(e *entry) **bool { return &e.Enabled }),
)

var beanSchema = NewSchema[bean](qn("beanType"),
	ID(func(b *bean) *string { return &b.ID }),
	Attr("color", colors, func(b *bean) *color { return &b.Color }),
	Required(Scalar("name", CollapsedString, func(b *bean) *string { return &b.Name })),
	Scalar("count", Int, func(b *bean) **int { return &b.Count }),
	Scalar("startup", Boolean, func(b *bean) **bool { return &b.Startup }),
	Scalars("tag", CollapsedString, func(b *bean) *[]string { return &b.Tags }),
	Unique("local", CollapsedString, func(b *bean) **Set { return &b.Locals }),
	Indexed("entry", entrySchema, func(b *bean) **Keyed[entry] { return &b.Entries }),
	Many("step", entrySchema, func(b *bean) *[]*entry { return &b.Steps }),
	One("owner", entrySchema, func(b *bean) **entry { return &b.Owner }),
	Wrapped("depends-on", "ejb-name", CollapsedString, func(b *bean) *[]string { return &b.DependsOn }),
).WithTypeOf(func(b *bean) xml.Name {
	if b.Kind == "stateless" {
		return qn("statelessBean")
	}
	if b.Kind != "" {
		return qn(b.Kind)
	}
	return qn("beanType")
})

var statelessSchema = beanSchema.Derive("statelessBean", func() *bean { return &bean{Kind: "stateless"} })

var holderSchema = NewSchema[holder](qn("holderType"),
	Always(Choice("members", func(h *holder) *[]member { return &h.Members },
		Variant("bean", beanSchema,
			func(b *bean) member { return b },
			func(m member) (*bean, bool) { b, ok := m.(*bean); return b, ok }),
		Variant("entry", entrySchema,
			func(e *entry) member { return e },
			func(m member) (*entry, bool) { e, ok := m.(*entry); return e, ok }),
	)),
)

const fullBean = `<?xml version="1.0"?>
<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
      xsi:schemaLocation="urn:jeedd:test bean.xsd" id="b1" color="red">
  <name>  Greeter
     Bean </name>
  <count>3</count>
  <startup>1</startup>
  <tag>a</tag>
  <tag>b</tag>
  <local>com.example.Local</local>
  <local>com.example.Other</local>
  <local>com.example.Local</local>
  <entry id="e1"><entry-name>x</entry-name><entry-value>1</entry-value></entry>
  <entry><entry-name>y</entry-name><enabled>true</enabled></entry>
  <step><entry-name>first</entry-name></step>
  <step><entry-name>second</entry-name></step>
  <owner><entry-name>root</entry-name></owner>
  <depends-on>
    <ejb-name>A</ejb-name>
    <ejb-name>B</ejb-name>
  </depends-on>
</bean>`

func mustUnmarshal(t *testing.T, doc string) (*bean, Diagnostics) {
	t.Helper()
	b, diags, err := Unmarshal(beanSchema, []byte(doc))
	require.NoError(t, err)
	return b, diags
}

func TestUnmarshal(t *testing.T) {
	b, diags := mustUnmarshal(t, fullBean)
	require.Empty(t, diags, spew.Sdump(diags))
	require.NotNil(t, b)

	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, color("red"), b.Color)
	assert.Equal(t, "Greeter Bean", b.Name)
	assert.Equal(t, IntPtr(3), b.Count)
	assert.Equal(t, Bool(true), b.Startup)
	assert.Equal(t, []string{"a", "b"}, b.Tags)
	assert.Equal(t, []string{"com.example.Local", "com.example.Other"}, b.Locals.Values())
	assert.Equal(t, []string{"x", "y"}, b.Entries.Keys())
	y, ok := b.Entries.Get("y")
	require.True(t, ok)
	assert.Equal(t, Bool(true), y.Enabled)
	require.Len(t, b.Steps, 2)
	assert.Equal(t, "second", b.Steps[1].Name)
	assert.Equal(t, "root", b.Owner.Name)
	assert.Equal(t, []string{"A", "B"}, b.DependsOn)
}

func TestMarshal_RoundTrip(t *testing.T) {
	b, diags := mustUnmarshal(t, fullBean)
	require.Empty(t, diags)

	out, diags, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)
	require.Empty(t, diags, spew.Sdump(diags))

	again, diags := mustUnmarshal(t, string(out))
	require.Empty(t, diags, string(out))
	assert.Equal(t, b, again)

	// Encoding the re-decoded record produces the same document.
	out2, _, err := Marshal(beanSchema, qn("bean"), again)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(out2))
}

func TestMarshal_DeclarationOrder(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test">
  <depends-on><ejb-name>A</ejb-name></depends-on>
  <owner><entry-name>o</entry-name></owner>
  <tag>t</tag>
  <name>n</name>
</bean>`
	b, diags := mustUnmarshal(t, doc)
	require.Empty(t, diags)

	out, _, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)

	root, err := xmlcursor.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	var names []string
	for _, child := range root.Elements() {
		names = append(names, child.Name().Local)
	}
	assert.Equal(t, []string{"name", "tag", "owner", "depends-on"}, names)
}

func TestUnmarshal_Idempotent(t *testing.T) {
	first, _ := mustUnmarshal(t, fullBean)
	second, _ := mustUnmarshal(t, fullBean)
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestUnmarshal_UnknownElement(t *testing.T) {
	injected := strings.Replace(fullBean, "<count>3</count>", "<count>3</count><bogus><x/></bogus>", 1)

	want, _ := mustUnmarshal(t, fullBean)
	got, diags := mustUnmarshal(t, injected)

	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedElement, diags[0].Kind)
	assert.Equal(t, qn("bogus"), diags[0].Name)
	assert.Equal(t, qn("beanType"), diags[0].Type)
	assert.Contains(t, diags[0].Expected, qn("name"))
	assert.Equal(t, 6, diags[0].Pos.Line)
	assert.Equal(t, want, got)
}

func TestUnmarshal_Attributes(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
      xsi:noNamespaceSchemaLocation="x.xsd" flavour="mint"><name>n</name></bean>`
	b, diags := mustUnmarshal(t, doc)
	require.NotNil(t, b)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedAttribute, diags[0].Kind)
	assert.Equal(t, xml.Name{Local: "flavour"}, diags[0].Name)
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		literal string
		want    bool
	}{
		{"1", true},
		{"true", true},
		{" true ", true},
		{"0", false},
		{"false", false},
		{"yes", false},
		{"TRUE", false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			b, diags := mustUnmarshal(t, `<bean xmlns="urn:jeedd:test"><startup>`+tt.literal+`</startup></bean>`)
			require.Empty(t, diags)
			require.NotNil(t, b.Startup)
			assert.Equal(t, tt.want, *b.Startup)
		})
	}
}

func TestAdapterErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		check func(t *testing.T, b *bean)
	}{
		{
			name:  "int",
			doc:   `<bean xmlns="urn:jeedd:test"><count>three</count><name>n</name></bean>`,
			field: "count",
			check: func(t *testing.T, b *bean) {
				assert.Nil(t, b.Count)
				assert.Equal(t, "n", b.Name)
			},
		},
		{
			name:  "enum",
			doc:   `<bean xmlns="urn:jeedd:test" color="blue"><name>n</name></bean>`,
			field: "color",
			check: func(t *testing.T, b *bean) {
				assert.Equal(t, color(""), b.Color)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, diags := mustUnmarshal(t, tt.doc)
			require.NotNil(t, b)
			require.Len(t, diags, 1)
			assert.Equal(t, AdapterError, diags[0].Kind)
			assert.Equal(t, tt.field, diags[0].Field)
			assert.Error(t, diags[0].Err)
			tt.check(t, b)
		})
	}
}

func TestMarshal_AdapterError(t *testing.T) {
	b := &bean{Name: "n", Color: "purple"}
	out, diags, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, AdapterError, diags[0].Kind)
	assert.NotContains(t, string(out), "purple")
}

func TestPolymorphicDispatch(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
      xsi:type="statelessBean"><name>Greeter</name></bean>`

	b, diags := mustUnmarshal(t, doc)
	require.Empty(t, diags)
	require.NotNil(t, b)
	assert.Equal(t, "stateless", b.Kind)
	assert.Equal(t, "Greeter", b.Name)

	out, diags, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)
	require.Empty(t, diags)

	root, err := xmlcursor.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	typ, ok := root.XsiType()
	require.True(t, ok, string(out))
	assert.Equal(t, qn("statelessBean"), typ)
}

func TestResolve(t *testing.T) {
	s, ok := beanSchema.Resolve(qn("statelessBean"))
	require.True(t, ok)
	assert.Same(t, statelessSchema, s)

	s, ok = beanSchema.Resolve(qn("beanType"))
	require.True(t, ok)
	assert.Same(t, beanSchema, s)

	_, ok = beanSchema.Resolve(qn("statefulBean"))
	assert.False(t, ok)
}

func TestUnmarshal_UnexpectedXsiType(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
      xsi:type="statefulBean"><name>Greeter</name></bean>`

	b, diags := mustUnmarshal(t, doc)
	assert.Nil(t, b)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedXsiType, diags[0].Kind)
	assert.Equal(t, qn("statefulBean"), diags[0].Name)
}

func TestMarshal_UnexpectedSubclass(t *testing.T) {
	out, diags, err := Marshal(beanSchema, qn("bean"), &bean{Kind: "timedBean", Name: "n"})
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedSubclass, diags[0].Kind)
	assert.Equal(t, qn("timedBean"), diags[0].Name)

	root, err := xmlcursor.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, root.Elements())
}

func TestNil(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:nil="true"/>`
	b, diags := mustUnmarshal(t, doc)
	assert.Nil(t, b)
	assert.Empty(t, diags)

	out, diags, err := Marshal(beanSchema, qn("bean"), (*bean)(nil))
	require.NoError(t, err)
	assert.Empty(t, diags)

	root, err := xmlcursor.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	assert.True(t, root.XsiNil(), string(out))
	assert.Empty(t, root.Elements())
}

func TestMany_NilMembers(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <step><entry-name>a</entry-name></step>
  <step xsi:nil="true"/>
</bean>`
	b, diags := mustUnmarshal(t, doc)
	require.Empty(t, diags)
	require.Len(t, b.Steps, 2)
	assert.Nil(t, b.Steps[1])

	b.Name = "n"
	out, diags, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedNullValue, diags[0].Kind)
	assert.Equal(t, "step", diags[0].Field)
	assert.Equal(t, 1, strings.Count(string(out), "<step>"))
}

func TestKeyed_LastWriteWins(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test">
  <entry><entry-name>greeting</entry-name><entry-value>hello</entry-value></entry>
  <entry><entry-name>greeting</entry-name><entry-value>bonjour</entry-value></entry>
</bean>`
	b, diags := mustUnmarshal(t, doc)
	require.Empty(t, diags)
	require.Equal(t, 1, b.Entries.Len())
	e, ok := b.Entries.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "bonjour", e.Value)
}

func TestMissingRequired(t *testing.T) {
	b := &bean{Owner: &entry{Value: "v"}}
	_, diags, err := Marshal(beanSchema, qn("bean"), b)
	require.NoError(t, err)
	assert.Equal(t, 2, diags.Count(MissingRequired), spew.Sdump(diags))
	assert.Equal(t, 2, len(diags))
}

func TestWrapped(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []string
		written bool
	}{
		{"absent", `<bean xmlns="urn:jeedd:test"><name>n</name></bean>`, nil, false},
		{"empty", `<bean xmlns="urn:jeedd:test"><name>n</name><depends-on/></bean>`, []string{}, true},
		{
			"last wins",
			`<bean xmlns="urn:jeedd:test"><depends-on><ejb-name>A</ejb-name></depends-on><depends-on><ejb-name>B</ejb-name></depends-on></bean>`,
			[]string{"B"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, diags := mustUnmarshal(t, tt.doc)
			require.Empty(t, diags)
			assert.Equal(t, tt.want, b.DependsOn)

			b.Name = "n"
			out, _, err := Marshal(beanSchema, qn("bean"), b)
			require.NoError(t, err)
			assert.Equal(t, tt.written, strings.Contains(string(out), "depends-on"), string(out))
		})
	}
}

func TestWrapped_UnknownItem(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test"><depends-on><ejb-name>A</ejb-name><bean-name>B</bean-name></depends-on></bean>`
	b, diags := mustUnmarshal(t, doc)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedElement, diags[0].Kind)
	assert.Equal(t, []xml.Name{qn("ejb-name")}, diags[0].Expected)
	assert.Equal(t, []string{"A"}, b.DependsOn)
}

func TestUnmarshalInto_Merge(t *testing.T) {
	base, diags := mustUnmarshal(t, `<bean xmlns="urn:jeedd:test">
  <name>base</name>
  <tag>keep</tag>
  <entry><entry-name>a</entry-name></entry>
  <entry><entry-name>b</entry-name></entry>
</bean>`)
	require.Empty(t, diags)
	entries := base.Entries

	diags, err := UnmarshalInto(beanSchema, []byte(`<bean xmlns="urn:jeedd:test">
  <entry><entry-name>c</entry-name><entry-value>1</entry-value></entry>
  <entry><entry-name>c</entry-name><entry-value>2</entry-value></entry>
</bean>`), base)
	require.NoError(t, err)
	require.Empty(t, diags)

	assert.Equal(t, "base", base.Name)
	assert.Equal(t, []string{"keep"}, base.Tags)
	assert.Same(t, entries, base.Entries, "existing collection is reused")
	assert.Equal(t, []string{"c"}, base.Entries.Keys())
	c, _ := base.Entries.Get("c")
	assert.Equal(t, "2", c.Value)
}

func TestDuplicateID(t *testing.T) {
	doc := `<bean xmlns="urn:jeedd:test" id="x">
  <step id="s"><entry-name>a</entry-name></step>
  <step id="x"><entry-name>b</entry-name></step>
</bean>`
	b, diags := mustUnmarshal(t, doc)
	require.Len(t, diags, 1)
	assert.Equal(t, DuplicateID, diags[0].Kind)
	assert.Equal(t, "x", diags[0].Name.Local)
	assert.Len(t, b.Steps, 2)
}

func TestContext_Lookup(t *testing.T) {
	c := NewContext()
	root, err := xmlcursor.Parse(strings.NewReader(`<bean xmlns="urn:jeedd:test" id="outer"><owner id="inner"><entry-name>o</entry-name></owner></bean>`))
	require.NoError(t, err)

	b := beanSchema.Decode(c, root)
	require.NotNil(t, b)

	rec, ok := c.Lookup("inner")
	require.True(t, ok)
	assert.Same(t, b.Owner, rec)
	rec, ok = c.Lookup("outer")
	require.True(t, ok)
	assert.Same(t, b, rec)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestChoice(t *testing.T) {
	doc := `<holder xmlns="urn:jeedd:test" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <members>
    <bean><name>one</name></bean>
    <entry><entry-name>two</entry-name></entry>
    <bean xsi:type="statelessBean"><name>three</name></bean>
    <widget/>
  </members>
</holder>`
	h, diags, err := Unmarshal(holderSchema, []byte(doc))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedElement, diags[0].Kind)
	assert.Equal(t, []xml.Name{qn("bean"), qn("entry")}, diags[0].Expected)

	require.Len(t, h.Members, 3)
	assert.IsType(t, &bean{}, h.Members[0])
	assert.IsType(t, &entry{}, h.Members[1])
	assert.Equal(t, "stateless", h.Members[2].(*bean).Kind)

	out, diags, err := Marshal(holderSchema, qn("holder"), h)
	require.NoError(t, err)
	require.Empty(t, diags)

	again, diags, err := Unmarshal(holderSchema, out)
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.Equal(t, h, again)
}

type stranger struct{}

func (stranger) isMember() {}

func TestChoice_Encode(t *testing.T) {
	t.Run("always written", func(t *testing.T) {
		out, diags, err := Marshal(holderSchema, qn("holder"), &holder{})
		require.NoError(t, err)
		assert.Empty(t, diags)
		assert.Contains(t, string(out), "<members/>")
	})

	t.Run("nil and foreign members", func(t *testing.T) {
		h := &holder{Members: []member{nil, stranger{}, &entry{Name: "e"}}}
		out, diags, err := Marshal(holderSchema, qn("holder"), h)
		require.NoError(t, err)
		require.Len(t, diags, 2)
		assert.Equal(t, UnexpectedNullValue, diags[0].Kind)
		assert.Equal(t, UnexpectedElementType, diags[1].Kind)
		assert.Contains(t, string(out), "<entry-name>e</entry-name>")
	})
}

type recordingListener struct {
	events []string
}

func (l *recordingListener) BeforeUnmarshal(rec any) { l.events = append(l.events, "before-unmarshal "+kindOf(rec)) }
func (l *recordingListener) AfterUnmarshal(rec any)  { l.events = append(l.events, "after-unmarshal "+kindOf(rec)) }
func (l *recordingListener) BeforeMarshal(rec any)   { l.events = append(l.events, "before-marshal "+kindOf(rec)) }
func (l *recordingListener) AfterMarshal(rec any)    { l.events = append(l.events, "after-marshal "+kindOf(rec)) }

func kindOf(rec any) string {
	switch rec.(type) {
	case *bean:
		return "bean"
	case *entry:
		return "entry"
	default:
		return "?"
	}
}

func TestListener(t *testing.T) {
	l := &recordingListener{}
	doc := `<bean xmlns="urn:jeedd:test"><name>n</name><owner><entry-name>o</entry-name></owner></bean>`
	b, _, err := Unmarshal(beanSchema, []byte(doc), WithListener(l))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"before-unmarshal bean",
		"before-unmarshal entry",
		"after-unmarshal entry",
		"after-unmarshal bean",
	}, l.events)

	l.events = nil
	_, _, err = Marshal(beanSchema, qn("bean"), b, WithListener(l))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"before-marshal bean",
		"before-marshal entry",
		"after-marshal entry",
		"after-marshal bean",
	}, l.events)
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, _, err := Unmarshal(beanSchema, []byte(`<bean><name>n</bean>`), WithFile("broken.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal beanType")
}

func TestCondition_Positions(t *testing.T) {
	_, diags, err := Unmarshal(beanSchema, []byte("<bean xmlns=\"urn:jeedd:test\">\n  <oops/>\n</bean>"), WithFile("ejb-jar.xml"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "ejb-jar.xml", diags[0].Pos.File)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.True(t, strings.HasPrefix(diags[0].String(), "ejb-jar.xml:2:3: unexpected element oops in beanType"), diags[0].String())
	assert.Error(t, diags.Err())
	assert.NoError(t, Diagnostics(nil).Err())
}

func TestUnmarshal_Root(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		found bool
	}{
		{"match", `<bean xmlns="urn:jeedd:test"><name>n</name></bean>`, true},
		{"other local name", `<other xmlns="urn:jeedd:test"><name>n</name></other>`, false},
		{"other namespace", `<bean xmlns="urn:elsewhere"><name>n</name></bean>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, diags, err := Unmarshal(beanSchema, []byte(tt.doc), WithRoot(qn("bean")))
			require.NoError(t, err)
			if tt.found {
				require.Empty(t, diags)
				require.NotNil(t, b)
				assert.Equal(t, "n", b.Name)
				return
			}
			assert.Nil(t, b)
			require.Len(t, diags, 1)
			assert.Equal(t, UnexpectedElement, diags[0].Kind)
			assert.Equal(t, []xml.Name{qn("bean")}, diags[0].Expected)
			assert.Equal(t, 1, diags[0].Pos.Line)
		})
	}
}

func TestUnmarshalInto_WrongRoot(t *testing.T) {
	rec := &bean{Name: "base"}
	diags, err := UnmarshalInto(beanSchema, []byte(`<other xmlns="urn:jeedd:test"><name>n</name></other>`), rec, WithRoot(qn("bean")))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, qn("other"), diags[0].Name)
	assert.Equal(t, "base", rec.Name)
}
