package binding

import "github.com/PuerkitoBio/goquery"

// zip visits nodes and entries pairwise by index, stopping at the shorter
// side. Surplus nodes keep their content and surplus entries are dropped.
func zip(nodes *goquery.Selection, n int, fn func(i int, node *goquery.Selection)) int {
	count := min(nodes.Length(), n)
	for i := 0; i < count; i++ {
		fn(i, nodes.Eq(i))
	}
	return count
}
