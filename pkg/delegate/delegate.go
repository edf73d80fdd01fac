// Package delegate exposes the plugin host's formatting operations as one
// capability object consumed by the formatting engine.
package delegate

import (
	"context"
	"sync"

	"github.com/quillfmt/quill/pkg/bridge"
	"github.com/quillfmt/quill/pkg/options"
)

// Host bundles the four host-side operation handles. The host passes these
// in at engine start; each is an asynchronous function executing inside the
// host process.
type Host struct {
	// InitFormatter primes the host-side formatter with a worker count and
	// returns the names of the plugins it loaded.
	InitFormatter bridge.HostFunc

	// FormatEmbedded formats a region of embedded code in another language.
	FormatEmbedded bridge.HostFunc

	// FormatFile formats a whole file with a host-side plugin parser.
	FormatFile bridge.HostFunc

	// SortClasses reorders utility class names for one class attribute.
	SortClasses bridge.HostFunc
}

type initRequest struct {
	NumThreads int `json:"numThreads"`
}

type formatEmbeddedRequest struct {
	Options    options.Raw `json:"options"`
	ParserName string      `json:"parserName"`
	Code       string      `json:"code"`
}

type formatFileRequest struct {
	Options    options.Raw `json:"options"`
	ParserName string      `json:"parserName"`
	FileName   string      `json:"fileName"`
	Code       string      `json:"code"`
}

type sortClassesRequest struct {
	Filepath string      `json:"filepath"`
	Options  options.Raw `json:"options"`
	Classes  []string    `json:"classes"`
}

// Delegate composes the four callback bridges plus lazily-performed
// initialization. One Delegate is owned by one engine session; it is safe
// for concurrent use from worker goroutines.
type Delegate struct {
	init           *bridge.Bridge[initRequest, []string]
	formatEmbedded *bridge.Bridge[formatEmbeddedRequest, string]
	formatFile     *bridge.Bridge[formatFileRequest, string]
	sortClasses    *bridge.Bridge[sortClassesRequest, []string]

	initOnce sync.Once
	plugins  []string
	initErr  *bridge.Error
}

// New creates a Delegate over the given host handles. A nil sched defaults
// to inline execution.
func New(host Host, sched bridge.Scheduler) *Delegate {
	return &Delegate{
		init:           bridge.New[initRequest, []string]("initExternalFormatter", host.InitFormatter, sched),
		formatEmbedded: bridge.New[formatEmbeddedRequest, string]("formatEmbedded", host.FormatEmbedded, sched),
		formatFile:     bridge.New[formatFileRequest, string]("formatFile", host.FormatFile, sched),
		sortClasses:    bridge.New[sortClassesRequest, []string]("sortTailwindClasses", host.SortClasses, sched),
	}
}

// Init performs host-side initialization at most once per session and
// returns the host plugin names. Repeat calls return the cached outcome,
// including a cached failure, and never re-trigger host-side side effects.
// Under a concurrent first-use race the first caller wins and every caller
// observes the same single initialization.
func (d *Delegate) Init(ctx context.Context, threadCount int) ([]string, *bridge.Error) {
	d.initOnce.Do(func() {
		d.plugins, d.initErr = d.init.Invoke(ctx, initRequest{NumThreads: threadCount})
	})
	return d.plugins, d.initErr
}

// FormatEmbedded delegates formatting of an embedded code region. On failure
// the caller must keep the original region text; delegation failures are
// non-fatal to the surrounding format operation.
func (d *Delegate) FormatEmbedded(ctx context.Context, opts options.Raw, parserName, code string) (string, *bridge.Error) {
	return d.formatEmbedded.Invoke(ctx, formatEmbeddedRequest{
		Options:    opts,
		ParserName: parserName,
		Code:       code,
	})
}

// FormatFile delegates formatting of a whole file to a host plugin parser.
// Same non-fatal contract as FormatEmbedded.
func (d *Delegate) FormatFile(ctx context.Context, opts options.Raw, parserName, fileName, code string) (string, *bridge.Error) {
	return d.formatFile.Invoke(ctx, formatFileRequest{
		Options:    opts,
		ParserName: parserName,
		FileName:   fileName,
		Code:       code,
	})
}

// SortClasses delegates utility-class sorting for one class attribute. On
// failure the caller must preserve the original ordering unchanged.
func (d *Delegate) SortClasses(ctx context.Context, filePath string, opts options.Raw, classes []string) ([]string, *bridge.Error) {
	return d.sortClasses.Invoke(ctx, sortClassesRequest{
		Filepath: filePath,
		Options:  opts,
		Classes:  classes,
	})
}
