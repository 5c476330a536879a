package httphandler

import (
	"net/http"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	version "github.com/mutablelogic/go-agui/pkg/version"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	serviceName   = "AG-UI POC Backend"
	statusRunning = "running"
	statusHealthy = "healthy"
	connected     = "connected"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /
func InfoHandler(relay *relay.Relay) (string, httprequest.PathItem) {
	return "", httprequest.NewPathItem("Service", "Service information", "service").Get(func(w http.ResponseWriter, r *http.Request) {
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ServiceInfo{
			Service:  serviceName,
			Status:   statusRunning,
			Protocol: schema.Protocol,
			Model:    relay.Model(),
			Version:  version.Version(),
		})
	}, "Return service information")
}

// Path: /health
func HealthHandler(models agui.ModelLister) (string, httprequest.PathItem) {
	return "health", httprequest.NewPathItem("Health", "Model runtime health", "service").Get(func(w http.ResponseWriter, r *http.Request) {
		list, err := models.ListModels(r.Context())
		if err != nil {
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusServiceUnavailable), "Ollama not available: "+err.Error())
			return
		}
		names := make([]string, 0, len(list))
		for _, model := range list {
			names = append(names, model.Name)
		}
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.HealthResponse{
			Status: statusHealthy,
			Ollama: connected,
			Models: names,
		})
	}, "Check the model runtime is reachable and list its models")
}
