// Package uri provides the structured URI value produced by the template
// parser: an optional scheme, an optional authority (userinfo, host, port),
// a path of ordered segments, an ordered query and an optional fragment.
//
// A URI is assembled through validating setters and read through accessors:
//
//	var u uri.URI
//	_ = u.SetScheme("https")
//	u.SetAddr(uri.HostPort("example.com", 8080))
//	u.SetPath(uri.AbsolutePath("a", "b"))
//	fmt.Println(u.String()) // https://example.com:8080/a/b
//
// Rendering percent-escapes each component with its own character class and
// adds brackets around IPv6 host literals. [Values] is an ordered,
// repeat-key-permitting collection of query parameters that can be embedded
// into a template as a ready-made query string.
//
// URI values are not safe for concurrent modification. When sharing across
// goroutines, either synchronize or use copies made with Clone.
package uri
