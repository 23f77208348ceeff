package jee

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jeedd/binding"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name xml.Name
		want Kind
	}{
		{xml.Name{Space: Namespace, Local: "application"}, KindApplication},
		{xml.Name{Space: Namespace, Local: "web-app"}, KindWebApp},
		{xml.Name{Space: Namespace, Local: "web-fragment"}, KindWebFragment},
		{xml.Name{Space: Namespace, Local: "ejb-jar"}, KindEjbJar},
		{xml.Name{Space: Namespace, Local: "persistence"}, KindUnknown},
		{xml.Name{Space: "urn:other", Local: "web-app"}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name.Local, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.name))
		})
	}
}

func TestKindForFile(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"src/main/webapp/WEB-INF/web.xml", KindWebApp},
		{"META-INF/web-fragment.xml", KindWebFragment},
		{"shop.ear!META-INF/application.xml", KindApplication},
		{"ejb-jar.xml", KindEjbJar},
		{"WEB-INF/jboss-web.xml", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := KindForFile(tt.path)
			assert.Equal(t, tt.want, got)
			if got != KindUnknown {
				assert.Equal(t, got, DetectKind(got.RootName()))
			}
		})
	}
}

func TestDecodeDescriptor_Application(t *testing.T) {
	doc := `<application xmlns="http://java.sun.com/xml/ns/javaee" version="6">
  <application-name>shop</application-name>
  <display-name>Shop</display-name>
  <initialize-in-order>true</initialize-in-order>
  <module><ejb>shop-ejb.jar</ejb></module>
  <module>
    <web>
      <web-uri>shop-web.war</web-uri>
      <context-root>/shop</context-root>
    </web>
  </module>
  <module><connector>mail.rar</connector><alt-dd>META-INF/ra.xml</alt-dd></module>
  <security-role><role-name>admin</role-name></security-role>
  <library-directory>lib</library-directory>
  <env-entry>
    <env-entry-name>greeting</env-entry-name>
    <env-entry-type>java.lang.String</env-entry-type>
    <env-entry-value>hello</env-entry-value>
  </env-entry>
  <message-destination>
    <message-destination-name>orders</message-destination-name>
  </message-destination>
</application>`

	d, diags, err := DecodeDescriptor([]byte(doc))
	require.NoError(t, err)
	require.Empty(t, diags)
	app, ok := d.(*Application)
	require.True(t, ok)

	assert.Equal(t, KindApplication, app.Kind())
	assert.Equal(t, "6", app.Version)
	assert.Equal(t, "shop", app.ApplicationName)
	assert.Equal(t, binding.Bool(true), app.InitializeInOrder)
	assert.Equal(t, "lib", app.LibraryDirectory)

	var uris []string
	for _, m := range app.Modules {
		uris = append(uris, m.URI())
	}
	assert.Equal(t, []string{"shop-ejb.jar", "shop-web.war", "mail.rar"}, uris)
	assert.Equal(t, "/shop", app.Modules[1].Web.ContextRoot)
	assert.Equal(t, "META-INF/ra.xml", app.Modules[2].AltDD)

	entry, ok := app.EnvEntries.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Value)
	_, ok = app.MessageDestinations.Get("orders")
	assert.True(t, ok)

	out, diags, err := EncodeDescriptor(app)
	require.NoError(t, err)
	require.Empty(t, diags)
	again, _, err := DecodeDescriptor(out)
	require.NoError(t, err)
	assert.Equal(t, app, again)
}

func TestDecodeDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		unsupported bool
	}{
		{"malformed", `<web-app xmlns="http://java.sun.com/xml/ns/javaee"><servlet></web-app>`, false},
		{"empty", ``, false},
		{"persistence", `<persistence xmlns="http://java.sun.com/xml/ns/persistence"/>`, true},
		{"foreign web-app", `<web-app xmlns="urn:acme"/>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, diags, err := DecodeDescriptor([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, d)
			assert.Nil(t, diags)
			assert.Equal(t, tt.unsupported, errors.Is(err, ErrUnsupportedRoot), err.Error())
		})
	}
}

func TestDecodeDescriptor_NilRoot(t *testing.T) {
	doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:nil="true"/>`
	d, diags, err := DecodeDescriptor([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Nil(t, d, "a nil record must not become a typed nil interface")
}

func TestDecodeDescriptor_ConditionPositions(t *testing.T) {
	doc := `<web-app xmlns="http://java.sun.com/xml/ns/javaee">
  <servlet>
    <servlet-name>front</servlet-name>
    <servlet-klass>com.acme.Front</servlet-klass>
  </servlet>
</web-app>`
	_, diags, err := DecodeDescriptor([]byte(doc), binding.WithFile("WEB-INF/web.xml"))
	require.NoError(t, err)
	require.Len(t, diags, 1)

	c := diags[0]
	assert.Equal(t, binding.UnexpectedElement, c.Kind)
	assert.Equal(t, "servlet-klass", c.Name.Local)
	assert.Equal(t, "servletType", c.Type.Local)
	assert.Equal(t, "WEB-INF/web.xml", c.Pos.File)
	assert.Equal(t, 4, c.Pos.Line)
}

func TestEncodeDescriptor_Unsupported(t *testing.T) {
	_, _, err := EncodeDescriptor(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedRoot))
}

func TestUnmarshal_SchemaRoot(t *testing.T) {
	doc := []byte(`<web-app xmlns="http://java.sun.com/xml/ns/javaee"><display-name>shop</display-name></web-app>`)

	app, diags, err := binding.Unmarshal(ApplicationSchema, doc, binding.WithRoot(KindApplication.RootName()))
	require.NoError(t, err)
	assert.Nil(t, app)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.UnexpectedElement, diags[0].Kind)
	assert.Equal(t, KindWebApp.RootName(), diags[0].Name)

	web, diags, err := binding.Unmarshal(WebAppSchema, doc, binding.WithRoot(KindWebApp.RootName()))
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.Equal(t, "shop", web.DisplayNames[0].Value)
}
