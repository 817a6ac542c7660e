package extractor

import "strings"

// ComponentType is the semantic role assigned to a sampled element.
type ComponentType string

const (
	Header     ComponentType = "header"
	Navigation ComponentType = "navigation"
	Main       ComponentType = "main"
	Footer     ComponentType = "footer"
	Aside      ComponentType = "aside"
	Button     ComponentType = "button"
	Link       ComponentType = "link"
	Input      ComponentType = "input"
	Form       ComponentType = "form"
	Article    ComponentType = "article"
	Section    ComponentType = "section"
	Hero       ComponentType = "hero"
	Card       ComponentType = "card"
	Modal      ComponentType = "modal"
	Dropdown   ComponentType = "dropdown"
	Generic    ComponentType = "generic"
)

// ClassifyElement maps an element's tag, ARIA role and classes to a ComponentType.
// Landmarks win over interactive tags, which win over sectioning tags, which win over
// class name patterns. Anything else is Generic.
func ClassifyElement(tag, role string, classes []string) ComponentType {
	tag = strings.ToLower(tag)

	switch {
	case tag == "header" || role == "banner":
		return Header
	case tag == "nav" || role == "navigation":
		return Navigation
	case tag == "main" || role == "main":
		return Main
	case tag == "footer" || role == "contentinfo":
		return Footer
	case tag == "aside" || role == "complementary":
		return Aside
	case tag == "button" || role == "button":
		return Button
	case tag == "a":
		return Link
	case tag == "input":
		return Input
	case tag == "form":
		return Form
	case tag == "article":
		return Article
	case tag == "section":
		return Section
	}

	class := strings.ToLower(strings.Join(classes, " "))
	switch {
	case strings.Contains(class, "hero"):
		return Hero
	case strings.Contains(class, "card"):
		return Card
	case strings.Contains(class, "modal") || strings.Contains(class, "dialog"):
		return Modal
	case strings.Contains(class, "dropdown") || strings.Contains(class, "menu"):
		return Dropdown
	}

	return Generic
}
