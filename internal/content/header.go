package content

// HeaderTitle is the page title.
const HeaderTitle = "React Essentials"

// TaglineWords is the pool the header picks its leading adjective from.
var TaglineWords = []string{"Fundamental", "Crucial", "Core"}

// Tagline builds the header subtitle around word.
func Tagline(word string) string {
	return word + " React concepts you will need for almost any app you are going to build!"
}

// PickTagline returns the tagline for the word chosen by intn, which must behave like
// rand.IntN: given n it returns a value in [0, n).
func PickTagline(intn func(n int) int) string {
	return Tagline(TaglineWords[intn(len(TaglineWords))])
}
