// Package route names chi routes so links can be generated from a name and
// parameters instead of hard-coded paths.
//
// Tables use a [Registry] to turn their index, create, show, edit and destroy
// routes into URLs:
//
//	reg := route.New()
//	reg.MustAdd("users.edit", "/users/{id}/edit")
//
//	u, _ := reg.URL("users.edit", map[string]string{"id": "7"})
//	// "/users/7/edit"
//
// [Router] registers names while wiring handlers on a chi router.
package route
