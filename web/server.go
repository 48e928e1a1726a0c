// Package web serves a JSON document as a single self-contained HTML page
// with a client-side tree, search, and path copying.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akarpov/jv"
)

//go:embed index.html.tmpl
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// portScanRange is how many consecutive ports are tried when the requested
// one is taken.
const portScanRange = 100

// Server serves a document over HTTP and implements jv.Viewer.
type Server struct {
	// Port is the first port to try. The server scans upward from it
	// when it is already in use.
	Port int
	// OpenBrowser opens the served URL in the default browser.
	OpenBrowser bool
	// Stdout receives startup messages. Nil defaults to os.Stdout.
	Stdout io.Writer
}

var _ jv.Viewer = (*Server)(nil)

// Handler returns an HTTP handler serving the viewer page for doc at "/"
// and "/index.html".
func Handler(doc *jv.Document) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			Source string
			Data   template.JS
		}{
			Source: doc.Source,
			Data:   template.JS(jv.Minify(doc.Value)),
		}
		if err := indexTemplate.Execute(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}

// View serves doc until ctx is canceled.
func (s *Server) View(ctx context.Context, doc *jv.Document) error {
	out := s.Stdout
	if out == nil {
		out = os.Stdout
	}

	ln, err := listen(s.Port)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://localhost:%d", ln.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(out, "Starting JSON viewer at %s\n", url)
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")

	srv := &http.Server{Handler: Handler(doc)}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving viewer: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if s.OpenBrowser {
		go openBrowser(url)
	}
	return g.Wait()
}

// listen binds the first free port in [port, port+portScanRange).
func listen(port int) (net.Listener, error) {
	for p := port; p < port+portScanRange; p++ {
		ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", p))
		if err == nil {
			return ln, nil
		}
	}
	return nil, fmt.Errorf("no free port in range %d-%d", port, port+portScanRange-1)
}
