package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo identifies the running build
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
}

// HandleVersion reports the configured service name and version together
// with the VCS revision stamped into the binary, if any.
func HandleVersion(service, version string) http.HandlerFunc {
	info := VersionInfo{
		Service:   service,
		Version:   version,
		GoVersion: runtime.Version(),
		Revision:  vcsRevision(),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
