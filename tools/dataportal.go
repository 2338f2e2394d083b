package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rickchristie/reagent"
	"github.com/rickchristie/reagent/schema"
)

// DefaultPortalMaxBytes caps how much log text is handed to the model.
// Logs easily dwarf a model's context window.
const DefaultPortalMaxBytes = 32 * 1024

const portalLogDescription = `Return a Xerces log file as text, one entry per line.
Xerces is a cloud service, built using OpenStack, consisting of subsystem modules.
The log entries are tagged with the name of the emitting module.

The modules are:
- 'Nova' handles virtual machines.
- 'Neutron' provides "networking-as-a-service".
- 'Swift' provides an object storage.
- 'Cinder' offers persistent block storage.
- 'Horizon' is the GUI for OpenStack.
- 'Keystone' provides identity services.
- 'Glance' handles discovery and retrieval of virtual machine images.
- 'Heat' orchestrates multiple composite cloud applications.

Args:
    None

Returns:
    str: the log file contents`

// PortalLog fetches one pinned log file from a data portal service. The
// dataset and file are fixed at construction, so the model cannot be steered
// into fetching arbitrary portal content.
//
// Responses larger than the byte cap are cut off with a [TRUNCATED] marker.
type PortalLog struct {
	baseURL  string
	dataset  string
	fileID   int
	maxBytes int
	client   *http.Client
}

// NewPortalLog creates a PortalLog reading the given file of the given
// dataset from the portal at baseURL.
func NewPortalLog(baseURL, dataset string, fileID int) *PortalLog {
	return &PortalLog{
		baseURL:  baseURL,
		dataset:  dataset,
		fileID:   fileID,
		maxBytes: DefaultPortalMaxBytes,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient sets the HTTP client. Returns the tool for chaining.
func (p *PortalLog) WithHTTPClient(client *http.Client) *PortalLog {
	p.client = client
	return p
}

// WithMaxBytes sets the truncation cap. Returns the tool for chaining.
func (p *PortalLog) WithMaxBytes(n int) *PortalLog {
	p.maxBytes = n
	return p
}

// Name returns the tool name.
func (p *PortalLog) Name() string {
	return "get_log"
}

// Description returns the tool documentation for the system prompt.
func (p *PortalLog) Description() string {
	return portalLogDescription
}

// ParameterSchema returns the tool's argument schema. The tool takes no
// parameters; the model sends an empty object.
func (p *PortalLog) ParameterSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{})
}

// Call fetches the pinned log file.
func (p *PortalLog) Call(ctx context.Context, args map[string]any) (string, error) {
	url := fmt.Sprintf("%s/datasets/%s/files/%d", p.baseURL, p.dataset, p.fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("portal http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(p.maxBytes)+1))
	if err != nil {
		return "", err
	}

	text := string(body)
	if len(text) > p.maxBytes {
		text = text[:p.maxBytes] + "\n[TRUNCATED]"
	}
	return text, nil
}

// Compile-time check that PortalLog implements reagent.Tool.
var _ reagent.Tool = (*PortalLog)(nil)
