package httpkit

import "net/http"

// APIV1 is the prefix every module is mounted under
const APIV1 = "/api/v1"

// MountUnder mounts a subrouter at prefix behind mw
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the versioned API root
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIV1, mw, mount)
}
