package uikit_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit"
	"github.com/networkteam/uikit/storybook"
)

func TestE2E(t *testing.T) {
	var memBefore, memAfter runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&memBefore)

	kit := uikit.NewWithOptions(uikit.Options{
		ActionCapacity: 10,
	})

	mux := http.NewServeMux()
	mux.Handle("/_storybook/", http.StripPrefix("/_storybook", kit.StorybookHandler("/_storybook")))

	server := httptest.NewServer(mux)

	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Get(server.URL + "/_storybook/")
	if err != nil {
		t.Fatalf("Failed to open storybook: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("Expected status 303 See Other, got %d", resp.StatusCode)
	}
	sessionPath := resp.Header.Get("Location")
	if !strings.HasPrefix(sessionPath, "/_storybook/s/") {
		t.Fatalf("Expected redirect into a session, got %q", sessionPath)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		forwarded int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(disabled bool) {
			defer wg.Done()
			form := url.Values{"variant": {"secondary"}}
			if disabled {
				form.Set("disabled", "true")
			}
			for i := 0; i < 10; i++ {
				resp, err := client.PostForm(server.URL+sessionPath+"story/components-button--playground/activate", form)
				if err != nil {
					t.Errorf("Failed to activate: %v", err)
					continue
				}
				resp.Body.Close()

				if resp.StatusCode != http.StatusNoContent {
					t.Errorf("Expected status 204 No Content, got %d", resp.StatusCode)
				}
				if resp.Header.Get(storybook.ActionForwardedHeader) == "true" {
					mu.Lock()
					forwarded++
					mu.Unlock()
				}
			}
		}(i%2 == 1)
	}

	wg.Wait()

	if forwarded != 20 {
		t.Errorf("Expected 20 forwarded activations, got %d", forwarded)
	}

	resp, err = client.Get(server.URL + sessionPath + "actions")
	if err != nil {
		t.Fatalf("Failed to get actions: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 OK, got %d", resp.StatusCode)
	}

	// A fresh session per page load must not grow without bound.
	for i := 0; i < 100; i++ {
		resp, err := client.Get(server.URL + "/_storybook/s/" + uuid.Must(uuid.NewV4()).String() + "/story/components-button--state-matrix")
		if err != nil {
			t.Fatalf("Failed to get story: %v", err)
		}
		resp.Body.Close()
	}

	server.Close()

	client = nil
	server = nil

	kit.Close()

	kit = nil
	mux = nil

	runtime.GC()
	runtime.ReadMemStats(&memAfter)

	if memAfter.HeapAlloc > memBefore.HeapAlloc {
		memGrowth := memAfter.HeapAlloc - memBefore.HeapAlloc
		if memGrowth > 2*1024*1024 {
			t.Errorf("Memory leak detected: grew by %d bytes", memGrowth)
		}
	}
}

func TestInstance_Options(t *testing.T) {
	catalog := storybook.NewCatalog().MustRegister(storybook.IntroductionStory())
	kit := uikit.NewWithOptions(uikit.Options{Catalog: catalog, Title: "Acme", DefaultTheme: storybook.ThemeDark})
	defer kit.Close()

	if kit.Catalog() != catalog {
		t.Fatalf("Expected the configured catalog")
	}

	rec := httptest.NewRecorder()
	kit.StorybookHandler("").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/s/"+uuid.Must(uuid.NewV4()).String()+"/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200 OK, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Acme") {
		t.Errorf("Expected title in page")
	}
	if !strings.Contains(body, `<html class="dark"`) {
		t.Errorf("Expected dark theme by default")
	}
	if strings.Contains(body, "components-button--default") {
		t.Errorf("Expected only stories of the configured catalog")
	}
}
