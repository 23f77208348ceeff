package pom

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

// Project holds the parts of a pom.xml that decide where a module keeps
// its deployment descriptors.
type Project struct {
	XMLName    xml.Name    `xml:"project"`
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version"`
	Packaging  string      `xml:"packaging"`
	Parent     *Parent     `xml:"parent"`
	Modules    []string    `xml:"modules>module"`
	Properties *Properties `xml:"properties"`
	Build      *Build      `xml:"build"`
}

type Parent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

type Properties struct {
	Entries map[string]string
}

func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Entries = make(map[string]string)
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			p.Entries[t.Name.Local] = value
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

type Build struct {
	FinalName string   `xml:"finalName"`
	Plugins   []Plugin `xml:"plugins>plugin"`
}

type Plugin struct {
	GroupID       string         `xml:"groupId"`
	ArtifactID    string         `xml:"artifactId"`
	Version       string         `xml:"version"`
	Configuration *Configuration `xml:"configuration"`
}

// Configuration keeps the war, ejb and ear plugin settings that move
// descriptors away from their default locations.
type Configuration struct {
	WebXML              string `xml:"webXml"`
	FailOnMissingWebXML string `xml:"failOnMissingWebXml"`
	WarSourceDirectory  string `xml:"warSourceDirectory"`
	ApplicationXML      string `xml:"applicationXml"`
	EarSourceDirectory  string `xml:"earSourceDirectory"`
	EjbVersion          string `xml:"ejbVersion"`
}

// Read parses a pom.xml. Documents in a non UTF-8 encoding are
// transcoded.
func Read(r io.Reader) (*Project, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	var project Project
	if err := d.Decode(&project); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}
	project.interpolateProperties()
	return &project, nil
}

func ReadFile(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open pom: %w", err)
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func (p *Project) interpolateProperties() {
	if p.Parent != nil {
		if p.GroupID == "" {
			p.GroupID = p.Parent.GroupID
		}
		if p.Version == "" {
			p.Version = p.Parent.Version
		}
	}

	props := make(map[string]string)
	if p.Properties != nil {
		for k, v := range p.Properties.Entries {
			props[k] = v
		}
	}
	props["project.groupId"] = p.GroupID
	props["project.artifactId"] = p.ArtifactID
	props["project.version"] = p.Version
	props["pom.groupId"] = p.GroupID
	props["pom.artifactId"] = p.ArtifactID
	props["pom.version"] = p.Version

	interpolate := func(s string) string {
		for k, v := range props {
			s = strings.ReplaceAll(s, "${"+k+"}", v)
		}
		return strings.TrimSpace(s)
	}

	if p.Build == nil {
		return
	}
	p.Build.FinalName = interpolate(p.Build.FinalName)
	for i := range p.Build.Plugins {
		c := p.Build.Plugins[i].Configuration
		if c == nil {
			continue
		}
		c.WebXML = interpolate(c.WebXML)
		c.WarSourceDirectory = interpolate(c.WarSourceDirectory)
		c.ApplicationXML = interpolate(c.ApplicationXML)
		c.EarSourceDirectory = interpolate(c.EarSourceDirectory)
	}
}

// EffectivePackaging returns the packaging, defaulting to jar.
func (p *Project) EffectivePackaging() string {
	if p.Packaging == "" {
		return "jar"
	}
	return strings.TrimSpace(p.Packaging)
}

// FinalName returns the archive base name Maven would build.
func (p *Project) FinalName() string {
	if p.Build != nil && p.Build.FinalName != "" {
		return p.Build.FinalName
	}
	if p.Version == "" {
		return p.ArtifactID
	}
	return p.ArtifactID + "-" + p.Version
}

// Plugin returns the configuration of the plugin with the given artifact
// id, or nil.
func (p *Project) Plugin(artifactID string) *Configuration {
	if p.Build == nil {
		return nil
	}
	for _, pl := range p.Build.Plugins {
		if pl.ArtifactID == artifactID {
			return pl.Configuration
		}
	}
	return nil
}

// Descriptor is a deployment descriptor location within a module, given
// relative to the module directory with forward slashes.
type Descriptor struct {
	File string
	Path string
	// Required is set when the packaging calls for the descriptor. Others
	// are picked up only when present.
	Required bool
}

// Descriptors lists where the module keeps its deployment descriptors.
// Packagings that carry no descriptor return nil.
func (p *Project) Descriptors() []Descriptor {
	switch p.EffectivePackaging() {
	case "war":
		c := p.Plugin("maven-war-plugin")
		required := c != nil && strings.TrimSpace(c.FailOnMissingWebXML) == "true"
		return []Descriptor{
			{File: "web.xml", Path: p.webXMLPath(), Required: required},
			{File: "web-fragment.xml", Path: "src/main/resources/META-INF/web-fragment.xml"},
		}
	case "ejb":
		return []Descriptor{
			{File: "ejb-jar.xml", Path: "src/main/resources/META-INF/ejb-jar.xml", Required: p.ejbDescriptorRequired()},
			{File: "web-fragment.xml", Path: "src/main/resources/META-INF/web-fragment.xml"},
		}
	case "jar":
		return []Descriptor{
			{File: "web-fragment.xml", Path: "src/main/resources/META-INF/web-fragment.xml"},
			{File: "ejb-jar.xml", Path: "src/main/resources/META-INF/ejb-jar.xml"},
		}
	case "ear":
		return []Descriptor{{File: "application.xml", Path: p.applicationXMLPath()}}
	}
	return nil
}

func (p *Project) webXMLPath() string {
	c := p.Plugin("maven-war-plugin")
	if c != nil && c.WebXML != "" {
		return relative(c.WebXML)
	}
	dir := "src/main/webapp"
	if c != nil && c.WarSourceDirectory != "" {
		dir = relative(c.WarSourceDirectory)
	}
	return path.Join(dir, "WEB-INF/web.xml")
}

func (p *Project) applicationXMLPath() string {
	c := p.Plugin("maven-ear-plugin")
	if c != nil && c.ApplicationXML != "" {
		return relative(c.ApplicationXML)
	}
	dir := "src/main/application"
	if c != nil && c.EarSourceDirectory != "" {
		dir = relative(c.EarSourceDirectory)
	}
	return path.Join(dir, "META-INF/application.xml")
}

// relative strips a leading module directory reference from a configured
// path.
func relative(p string) string {
	for _, prefix := range []string{"${basedir}/", "${project.basedir}/"} {
		p = strings.TrimPrefix(p, prefix)
	}
	return path.Clean(p)
}

// EJB 3 modules may omit ejb-jar.xml; the ejb plugin only insists on it
// for older versions.
func (p *Project) ejbDescriptorRequired() bool {
	c := p.Plugin("maven-ejb-plugin")
	if c == nil || c.EjbVersion == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(c.EjbVersion), "2.")
}
