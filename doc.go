// Package orbitcore is the public API of the ORBIT-Connect content utilities.
//
// It ranks in-memory collections against free-text queries, narrows them with
// exact-match filters, validates form data against declarative schemas and
// maps engagement points to levels. Apart from Debouncer everything is pure;
// callers own their data and pass it in explicitly.
//
// Field access is declared per type with an accessor table:
//
//	var courseFields = orbitcore.Fields[Course]{
//		"title":    func(c Course) any { return c.Title },
//		"category": func(c Course) any { return c.Category },
//	}
//
//	hits := orbitcore.NewQuery(courses, courseFields, "title").
//		Text("satellite").
//		Where("category", orbitcore.Eq("Education")).
//		Do()
package orbitcore
