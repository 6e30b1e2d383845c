package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/behren-q/qturn/internal/cube"
	"github.com/behren-q/qturn/internal/facelet"
)

type SolveRequest struct {
	Algorithm string `json:"algorithm"`
	Facelets  string `json:"facelets"`
	MaxDepth  int    `json:"max_depth"`
}

type SolveResponse struct {
	Solved     bool   `json:"solved"`
	Depth      int    `json:"depth"`
	Solution   string `json:"solution"`
	DurationMs int64  `json:"duration_ms"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>qturn</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>qturn</h1>
    <div class="container">
        <h2>Solve a scramble</h2>
        <form id="solveForm">
            <div>
                <label>Algorithm:</label><br>
                <input type="text" id="algorithm" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const algorithm = document.getElementById('algorithm').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ algorithm, max_depth: 20 })
                });

                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                    '<p><strong>Depth:</strong> ' + result.depth + '</p>' +
                    '<p><strong>Time:</strong> ' + result.duration_ms + 'ms</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	var pos cube.State
	var err error
	switch {
	case req.Facelets != "":
		pos, err = facelet.Parse(req.Facelets)
	case req.Algorithm != "":
		pos, err = cube.Parse(req.Algorithm)
	default:
		pos = cube.Solved
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("error parsing starting state: %v", err), http.StatusBadRequest)
		return
	}

	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 20
	}

	start := time.Now()
	path, ok := cube.Search(pos, maxDepth)
	elapsed := time.Since(start)

	response := SolveResponse{
		Solved:     ok,
		Depth:      len(path),
		Solution:   cube.Format(path),
		DurationMs: elapsed.Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
