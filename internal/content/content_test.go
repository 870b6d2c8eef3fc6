package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample_DefinedForEveryTopic(t *testing.T) {
	for _, id := range Topics() {
		t.Run(id.String(), func(t *testing.T) {
			rec := Example(id)
			assert.Equal(t, id.Label(), rec.Title)
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.Code)
		})
	}
}

func TestExample_StateCodeUsesHook(t *testing.T) {
	assert.Contains(t, Example(TopicState).Code, "useState(")
}

func TestExample_PanicsOutsideClosedSet(t *testing.T) {
	assert.PanicsWithValue(t, "content: no example for topic 4", func() {
		Example(TopicID(4))
	})
	assert.Panics(t, func() { Example(TopicID(-1)) })
}

func TestTopics_ButtonOrder(t *testing.T) {
	assert.Equal(t, []TopicID{TopicComponents, TopicJSX, TopicProps, TopicState}, Topics())

	labels := make([]string, 0, 4)
	for _, id := range Topics() {
		labels = append(labels, id.Label())
	}
	assert.Equal(t, []string{"Components", "JSX", "Props", "State"}, labels)
}

func TestParseTopic(t *testing.T) {
	for _, id := range Topics() {
		got, err := ParseTopic(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	got, err := ParseTopic("  JSX ")
	require.NoError(t, err)
	assert.Equal(t, TopicJSX, got)

	_, err = ParseTopic("hooks")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestConcepts_StableAndIndependentCopies(t *testing.T) {
	first := Concepts()
	require.Len(t, first, 4)
	assert.Equal(t, []string{"Components", "JSX", "Props", "State"},
		[]string{first[0].Title, first[1].Title, first[2].Title, first[3].Title})

	first[0].Title = "mutated"
	second := Concepts()
	assert.Equal(t, "Components", second[0].Title)
}

func TestImage_EveryConceptHasAsset(t *testing.T) {
	for _, c := range Concepts() {
		art, err := Image(c.Image)
		require.NoError(t, err, c.Title)
		assert.NotEmpty(t, art)
		assert.NotContains(t, art[len(art)-1:], "\n")
	}
}

func TestImage_Missing(t *testing.T) {
	for _, ref := range []ImageRef{"", "nope", "../assets/config"} {
		_, err := Image(ref)
		assert.ErrorIs(t, err, ErrImageNotFound, string(ref))
	}
}

func TestPickTagline(t *testing.T) {
	var gotN int
	line := PickTagline(func(n int) int {
		gotN = n
		return 2
	})
	assert.Equal(t, len(TaglineWords), gotN)
	assert.Equal(t, "Core React concepts you will need for almost any app you are going to build!", line)
}
