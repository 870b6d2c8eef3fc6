// Package content holds the static data rendered by the UI: the example record for
// each topic, the ordered core concept list, and the header copy.
//
// Everything here is fixed at build time and never mutated, so it is safe to read
// from any goroutine.
package content

import "fmt"

// TopicRecord is the example shown when a topic is selected.
type TopicRecord struct {
	Title       string
	Description string
	Code        string
}

// ConceptRecord is one entry of the core concepts list.
type ConceptRecord struct {
	Title       string
	Description string
	Image       ImageRef
}

// examples is indexed by TopicID; every topic has exactly one record.
var examples = [topicCount]TopicRecord{
	TopicComponents: {
		Title:       "Components",
		Description: "Components are the building blocks of React applications. A component is a self-contained module (HTML + optional CSS + JS) that renders some output.",
		Code: `function Welcome() {
  return <h1>Hello, World!</h1>;
}`,
	},
	TopicJSX: {
		Title:       "JSX",
		Description: "JSX is a syntax extension to JavaScript. It is similar to a template language, but it has full power of JavaScript (e.g., it may output dynamic content).",
		Code: `<div>
  <h1>Welcome {userName}</h1>
  <p>Time to learn React!</p>
</div>`,
	},
	TopicProps: {
		Title:       "Props",
		Description: "Components accept arbitrary inputs called props. They are like function arguments.",
		Code: `function Welcome(props) {
  return <h1>Hello, {props.name}</h1>;
}`,
	},
	TopicState: {
		Title:       "State",
		Description: "State allows React components to change their output over time in response to user actions, network responses, and anything else.",
		Code: `function Counter() {
  const [isVisible, setIsVisible] = useState(false);

  function handleClick() {
    setIsVisible(true);
  }

  return (
    <div>
      <button onClick={handleClick}>Show Details</button>
      {isVisible && <p>Amazing details!</p>}
    </div>
  );
}`,
	},
}

var concepts = []ConceptRecord{
	{
		Title:       "Components",
		Description: "The core UI building block - compose the user interface by combining multiple components.",
		Image:       "components",
	},
	{
		Title:       "JSX",
		Description: "Return (potentially dynamic) HTML(ish) code to define the actual markup that will be rendered.",
		Image:       "jsx-ui",
	},
	{
		Title:       "Props",
		Description: "Make components configurable (and therefore reusable) by passing input data to them.",
		Image:       "config",
	},
	{
		Title:       "State",
		Description: "React-managed data which, when changed, causes the component to re-render & the UI to update.",
		Image:       "state-mgmt",
	},
}

// Example returns the record for id. It panics if id is outside the closed topic set:
// callers only ever hold TopicIDs produced by Topics or ParseTopic.
func Example(id TopicID) TopicRecord {
	if !id.Valid() {
		panic(fmt.Sprintf("content: no example for topic %d", int(id)))
	}
	return examples[id]
}

// Concepts returns the core concepts in display order. The slice is a copy.
func Concepts() []ConceptRecord {
	out := make([]ConceptRecord, len(concepts))
	copy(out, concepts)
	return out
}
