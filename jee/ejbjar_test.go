package jee

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/xmlcursor"
)

const ejbJarXML = `<?xml version="1.0" encoding="UTF-8"?>
<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         version="3.1" metadata-complete="true">
  <module-name>orders</module-name>
  <display-name>Orders</display-name>
  <enterprise-beans>
    <session xsi:type="statelessBean">
      <ejb-name>OrderService</ejb-name>
      <business-local>com.acme.OrderService</business-local>
      <ejb-class>com.acme.OrderServiceBean</ejb-class>
      <session-type>Stateless</session-type>
      <depends-on>
        <ejb-name>Inventory</ejb-name>
        <ejb-name>Audit</ejb-name>
      </depends-on>
      <transaction-type>Container</transaction-type>
      <env-entry>
        <env-entry-name>maxItems</env-entry-name>
        <env-entry-type>java.lang.Integer</env-entry-type>
        <env-entry-value>10</env-entry-value>
      </env-entry>
      <ejb-local-ref>
        <ejb-ref-name>ejb/Inventory</ejb-ref-name>
        <local>com.acme.Inventory</local>
        <ejb-link>Inventory</ejb-link>
      </ejb-local-ref>
      <resource-ref>
        <res-ref-name>jdbc/orders</res-ref-name>
        <res-type>javax.sql.DataSource</res-type>
        <res-auth>Container</res-auth>
        <injection-target>
          <injection-target-class>com.acme.OrderServiceBean</injection-target-class>
          <injection-target-name>ds</injection-target-name>
        </injection-target>
      </resource-ref>
      <post-construct>
        <lifecycle-callback-method>init</lifecycle-callback-method>
      </post-construct>
    </session>
    <session xsi:type="singletonBean">
      <ejb-name>Inventory</ejb-name>
      <ejb-class>com.acme.InventoryBean</ejb-class>
      <init-on-startup>true</init-on-startup>
      <concurrency-management-type>Container</concurrency-management-type>
      <concurrent-method>
        <method><method-name>count</method-name></method>
        <lock>Read</lock>
        <access-timeout><timeout>5</timeout><unit>Seconds</unit></access-timeout>
      </concurrent-method>
      <timer>
        <schedule><minute>*/5</minute><hour>*</hour></schedule>
        <timeout-method><method-name>refresh</method-name></timeout-method>
        <persistent>false</persistent>
      </timer>
    </session>
    <entity>
      <ejb-name>Customer</ejb-name>
      <ejb-class>com.acme.CustomerBean</ejb-class>
      <persistence-type>Container</persistence-type>
      <prim-key-class>java.lang.String</prim-key-class>
      <reentrant>false</reentrant>
      <cmp-version>2.x</cmp-version>
      <cmp-field><field-name>name</field-name></cmp-field>
      <primkey-field>name</primkey-field>
      <query>
        <query-method>
          <method-name>findAll</method-name>
          <method-params/>
        </query-method>
        <ejb-ql>SELECT OBJECT(c) FROM Customer c</ejb-ql>
      </query>
    </entity>
    <message-driven>
      <ejb-name>Audit</ejb-name>
      <ejb-class>com.acme.AuditBean</ejb-class>
      <messaging-type>javax.jms.MessageListener</messaging-type>
      <activation-config>
        <activation-config-property>
          <activation-config-property-name>destinationType</activation-config-property-name>
          <activation-config-property-value>javax.jms.Queue</activation-config-property-value>
        </activation-config-property>
      </activation-config>
    </message-driven>
  </enterprise-beans>
  <interceptors>
    <interceptor>
      <interceptor-class>com.acme.Tracing</interceptor-class>
      <around-invoke><method-name>trace</method-name></around-invoke>
    </interceptor>
  </interceptors>
  <assembly-descriptor>
    <security-role><role-name>clerk</role-name></security-role>
    <method-permission>
      <role-name>clerk</role-name>
      <method><ejb-name>OrderService</ejb-name><method-name>*</method-name></method>
    </method-permission>
    <container-transaction>
      <method><ejb-name>OrderService</ejb-name><method-intf>Local</method-intf><method-name>place</method-name></method>
      <trans-attribute>RequiresNew</trans-attribute>
    </container-transaction>
    <interceptor-binding>
      <ejb-name>*</ejb-name>
      <interceptor-class>com.acme.Tracing</interceptor-class>
    </interceptor-binding>
    <application-exception>
      <exception-class>com.acme.OutOfStock</exception-class>
      <rollback>true</rollback>
    </application-exception>
  </assembly-descriptor>
</ejb-jar>
`

func decodeEjbJar(t *testing.T, doc string) (*EjbJar, binding.Diagnostics) {
	t.Helper()
	d, diags, err := DecodeDescriptor([]byte(doc), binding.WithFile("ejb-jar.xml"))
	require.NoError(t, err)
	jar, ok := d.(*EjbJar)
	require.True(t, ok, "got %T", d)
	return jar, diags
}

func TestDecodeDescriptor_EjbJar(t *testing.T) {
	jar, diags := decodeEjbJar(t, ejbJarXML)
	require.Empty(t, diags, spew.Sdump(diags))

	assert.Equal(t, "3.1", jar.Version)
	assert.Equal(t, binding.Bool(true), jar.MetadataComplete)
	assert.Equal(t, "orders", jar.ModuleName)
	require.Len(t, jar.DisplayNames, 1)
	assert.Equal(t, "Orders", jar.DisplayNames[0].Value)
	require.Len(t, jar.EnterpriseBeans, 4)

	orders, ok := jar.EnterpriseBeans[0].(*SessionBean)
	require.True(t, ok)
	assert.Equal(t, VariantStateless, orders.Variant)
	assert.Equal(t, SessionStateless, orders.SessionType)
	assert.Equal(t, []string{"com.acme.OrderService"}, orders.BusinessLocal.Values())
	assert.Equal(t, []string{"Inventory", "Audit"}, orders.DependsOn)
	assert.Equal(t, TransactionContainer, orders.TransactionType)

	maxItems, ok := orders.EnvEntries.Get("maxItems")
	require.True(t, ok)
	assert.Equal(t, "10", maxItems.Value)
	ds, ok := orders.ResourceRefs.Get("jdbc/orders")
	require.True(t, ok)
	assert.Equal(t, ResAuthContainer, ds.Auth)
	require.Len(t, ds.InjectionTargets, 1)
	assert.Equal(t, "ds", ds.InjectionTargets[0].Name)
	assert.Equal(t, []string{"ejb/Inventory"}, orders.EjbLocalRefs.Keys())
	require.Len(t, orders.PostConstruct, 1)
	assert.Equal(t, "init", orders.PostConstruct[0].Method)

	inventory, ok := jar.Bean("Inventory")
	require.True(t, ok)
	singleton := inventory.(*SessionBean)
	assert.Equal(t, VariantSingleton, singleton.Variant)
	assert.Equal(t, binding.Bool(true), singleton.InitOnStartup)
	require.Len(t, singleton.ConcurrentMethods, 1)
	cm := singleton.ConcurrentMethods[0]
	assert.Equal(t, "count", cm.Method.MethodName)
	assert.Equal(t, LockRead, cm.Lock)
	assert.Equal(t, binding.IntPtr(5), cm.AccessTimeout.Timeout)
	assert.Equal(t, Seconds, cm.AccessTimeout.Unit)
	require.Len(t, singleton.Timers, 1)
	assert.Equal(t, "*/5", singleton.Timers[0].Schedule.Minute)
	assert.Equal(t, binding.Bool(false), singleton.Timers[0].Persistent)

	customer := jar.EnterpriseBeans[2].(*EntityBean)
	assert.Equal(t, PersistenceContainer, customer.PersistenceType)
	assert.Equal(t, Cmp2, customer.CmpVersion)
	require.Len(t, customer.Queries, 1)
	assert.Equal(t, "findAll", customer.Queries[0].QueryMethod.MethodName)
	assert.NotNil(t, customer.Queries[0].QueryMethod.MethodParams)

	audit := jar.EnterpriseBeans[3].(*MessageDrivenBean)
	dest, ok := audit.ActivationConfig.Property("destinationType")
	require.True(t, ok)
	assert.Equal(t, "javax.jms.Queue", dest)

	_, ok = jar.Interceptors.Interceptors.Get("com.acme.Tracing")
	assert.True(t, ok)

	ad := jar.AssemblyDescriptor
	require.Len(t, ad.ContainerTransactions, 1)
	assert.Equal(t, TransRequiresNew, ad.ContainerTransactions[0].TransAttribute)
	assert.Equal(t, IntfLocal, ad.ContainerTransactions[0].Methods[0].Intf)
	assert.Equal(t, []string{"clerk"}, ad.MethodPermissions[0].RoleNames)
	exc, ok := ad.ApplicationExceptions.Get("com.acme.OutOfStock")
	require.True(t, ok)
	assert.Equal(t, binding.Bool(true), exc.Rollback)
}

func TestEncodeDescriptor_EjbJarRoundTrip(t *testing.T) {
	jar, _ := decodeEjbJar(t, ejbJarXML)

	out, diags, err := EncodeDescriptor(jar)
	require.NoError(t, err)
	require.Empty(t, diags, spew.Sdump(diags))

	again, diags := decodeEjbJar(t, string(out))
	require.Empty(t, diags, string(out))
	assert.Equal(t, jar, again)

	out2, _, err := EncodeDescriptor(again)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(out2))
}

func TestSessionBean_XsiTypeDispatch(t *testing.T) {
	tests := []struct {
		name    string
		xsiType string
		want    SessionVariant
	}{
		{"none", "", VariantSession},
		{"base", "session-beanType", VariantSession},
		{"stateless", "statelessBean", VariantStateless},
		{"stateful", "statefulBean", VariantStateful},
		{"singleton", "singletonBean", VariantSingleton},
		{"managed", "managedBean", VariantManaged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := ""
			if tt.xsiType != "" {
				attr = ` xsi:type="` + tt.xsiType + `"`
			}
			doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <enterprise-beans><session` + attr + `><ejb-name>A</ejb-name></session></enterprise-beans>
</ejb-jar>`
			jar, diags := decodeEjbJar(t, doc)
			require.Empty(t, diags)
			require.Len(t, jar.EnterpriseBeans, 1)
			b := jar.EnterpriseBeans[0].(*SessionBean)
			assert.Equal(t, tt.want, b.Variant)

			out, diags, err := EncodeDescriptor(jar)
			require.NoError(t, err)
			require.Empty(t, diags)
			if tt.want == VariantSession {
				assert.NotContains(t, string(out), "xsi:type")
			} else {
				assert.Contains(t, string(out), `<session xsi:type="`+tt.xsiType+`">`)
			}
		})
	}
}

func TestSessionBean_UnknownXsiType(t *testing.T) {
	doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <enterprise-beans>
    <session xsi:type="entityBean"><ejb-name>A</ejb-name></session>
    <session><ejb-name>B</ejb-name></session>
  </enterprise-beans>
</ejb-jar>`
	jar, diags := decodeEjbJar(t, doc)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.UnexpectedXsiType, diags[0].Kind)
	assert.Equal(t, 3, diags[0].Pos.Line)

	require.Len(t, jar.EnterpriseBeans, 2)
	assert.Nil(t, jar.EnterpriseBeans[0])
	assert.Equal(t, "B", jar.EnterpriseBeans[1].BeanName())
}

func TestSessionBean_UndeclaredXsiTypePrefix(t *testing.T) {
	doc := `<ejb-jar xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <enterprise-beans>
    <session xsi:type="bogus:statelessBean"><ejb-name>A</ejb-name></session>
  </enterprise-beans>
</ejb-jar>`
	jar, diags := decodeEjbJar(t, doc)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.UnexpectedXsiType, diags[0].Kind)
	assert.Equal(t, xml.Name{Local: "statelessBean"}, diags[0].Name)
	require.Len(t, jar.EnterpriseBeans, 1)
	assert.Nil(t, jar.EnterpriseBeans[0])
}

func TestSessionBean_BusinessInterfacesDeduplicated(t *testing.T) {
	doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee">
  <enterprise-beans>
    <session>
      <ejb-name>Orders</ejb-name>
      <business-local>com.acme.Orders</business-local>
      <business-local> com.acme.Orders </business-local>
      <business-local>com.acme.Audit</business-local>
      <business-remote>com.acme.RemoteOrders</business-remote>
      <business-remote>com.acme.RemoteOrders</business-remote>
    </session>
  </enterprise-beans>
</ejb-jar>`
	jar, diags := decodeEjbJar(t, doc)
	require.Empty(t, diags)
	b := jar.EnterpriseBeans[0].(*SessionBean)
	assert.Equal(t, 2, b.BusinessLocal.Len())
	assert.Equal(t, []string{"com.acme.Orders", "com.acme.Audit"}, b.BusinessLocal.Values())
	assert.Equal(t, 1, b.BusinessRemote.Len())

	out, diags, err := EncodeDescriptor(jar)
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.Equal(t, 1, strings.Count(string(out), "<business-local>com.acme.Orders</business-local>"))
	assert.Equal(t, 1, strings.Count(string(out), "<business-remote>"))
	assert.Less(t, strings.Index(string(out), "com.acme.Orders"), strings.Index(string(out), "com.acme.Audit"))
}

func TestSessionBean_UnknownVariant(t *testing.T) {
	jar := &EjbJar{}
	jar.AddBean(&SessionBean{Variant: "remoteBean", EjbName: "A"})
	jar.AddBean(NewSessionBean(VariantStateful, "B", "com.acme.B"))

	out, diags, err := EncodeDescriptor(jar)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.UnexpectedSubclass, diags[0].Kind)
	assert.Contains(t, string(out), `<session xsi:type="statefulBean">`)
	assert.Contains(t, string(out), `<session-type>Stateful</session-type>`)
}

func TestEjbJar_EnterpriseBeansAlwaysWritten(t *testing.T) {
	out, diags, err := EncodeDescriptor(&EjbJar{Version: "3.1"})
	require.NoError(t, err)
	require.Empty(t, diags)

	root, err := xmlcursor.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, root.Elements(), 1)
	assert.Equal(t, "enterprise-beans", root.Elements()[0].Name().Local)
	assert.Empty(t, root.Elements()[0].Elements())
}

func TestEjbJar_NilBeanReported(t *testing.T) {
	jar := &EjbJar{EnterpriseBeans: []EnterpriseBean{nil, NewSessionBean(VariantStateless, "A", "com.acme.A")}}

	out, diags, err := EncodeDescriptor(jar)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.UnexpectedNullValue, diags[0].Kind)
	assert.Equal(t, 1, strings.Count(string(out), "<session "))
}

func TestEjbJar_MissingRequired(t *testing.T) {
	jar := &EjbJar{}
	jar.AddBean(&EntityBean{EjbClass: "com.acme.C"})

	_, diags, err := EncodeDescriptor(jar)
	require.NoError(t, err)
	require.Equal(t, 2, diags.Count(binding.MissingRequired), spew.Sdump(diags))
	assert.Equal(t, "ejbName", diags[0].Field)
	assert.Equal(t, "persistenceType", diags[1].Field)
}

func TestEnvEntries_LastDuplicateWins(t *testing.T) {
	doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee"><enterprise-beans><session>
  <ejb-name>A</ejb-name>
  <env-entry><env-entry-name>x</env-entry-name><env-entry-value>1</env-entry-value></env-entry>
  <env-entry><env-entry-name>y</env-entry-name><env-entry-value>2</env-entry-value></env-entry>
  <env-entry><env-entry-name>x</env-entry-name><env-entry-value>3</env-entry-value></env-entry>
</session></enterprise-beans></ejb-jar>`
	jar, diags := decodeEjbJar(t, doc)
	require.Empty(t, diags)

	env := jar.EnterpriseBeans[0].Environment()
	assert.Equal(t, []string{"x", "y"}, env.EnvEntries.Keys())
	x, _ := env.EnvEntries.Get("x")
	assert.Equal(t, "3", x.Value)
}

func TestEjbJar_BadEnum(t *testing.T) {
	doc := `<ejb-jar xmlns="http://java.sun.com/xml/ns/javaee"><enterprise-beans><session>
  <ejb-name>A</ejb-name>
  <session-type>Stateles</session-type>
</session></enterprise-beans></ejb-jar>`
	jar, diags := decodeEjbJar(t, doc)
	require.Len(t, diags, 1)
	assert.Equal(t, binding.AdapterError, diags[0].Kind)
	assert.Equal(t, "sessionType", diags[0].Field)
	assert.Equal(t, SessionType(""), jar.EnterpriseBeans[0].(*SessionBean).SessionType)
}
