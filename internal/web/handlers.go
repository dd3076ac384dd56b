package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/kociemba/internal/cube"
	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
)

type SolveRequest struct {
	Start    string `json:"start"`
	Target   string `json:"target"`
	MaxSteps int    `json:"maxSteps"`
	Best     bool   `json:"best"`
}

type SolveResponse struct {
	Status   string `json:"status"`
	Solution string `json:"solution,omitempty"`
	Moves    []int  `json:"moves,omitempty"`
	Steps    int    `json:"steps"`
	Error    string `json:"error,omitempty"`
}

type ApplyRequest struct {
	Start    string `json:"start"`
	Maneuver string `json:"maneuver"`
}

type ApplyResponse struct {
	Facelets string `json:"facelets,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Kociemba Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; white-space: pre-wrap; font-family: monospace; }
    </style>
</head>
<body>
    <h1>Kociemba Cube Solver</h1>
    <div class="container">
        <h2>Solve</h2>
        <form id="solveForm">
            <div>
                <label>Start facelets:</label><br>
                <input type="text" id="start" placeholder="54-character facelet string, blank for solved" style="width: 100%;">
            </div>
            <div>
                <label>Target facelets:</label><br>
                <input type="text" id="target" placeholder="54-character facelet string, blank for solved" style="width: 100%;">
            </div>
            <div>
                <label>Max steps:</label>
                <input type="number" id="maxSteps" value="30">
                <label><input type="checkbox" id="best" checked> best solution</label>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const start = document.getElementById('start').value;
            const target = document.getElementById('target').value;
            const maxSteps = parseInt(document.getElementById('maxSteps').value) || 30;
            const best = document.getElementById('best').checked;

            const result = document.getElementById('result');
            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ start, target, maxSteps, best })
                });
                const body = await response.json();
                if (body.status !== 'ok') {
                    result.textContent = 'Error (' + body.status + '): ' + (body.error || '');
                } else {
                    result.textContent = body.solution + '\n(' + body.steps + ' moves)';
                }
                result.style.display = 'block';
            } catch (error) {
                result.textContent = 'Error: ' + error.message;
                result.style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	start := req.Start
	if start == "" {
		start = facelet.Identity
	}
	target := req.Target
	if target == "" {
		target = facelet.Identity
	}
	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = cube.DefaultMaxSteps
	}

	resp := SolveResponse{}

	srcCube, err := facelet.FromFacelets(start)
	if err != nil {
		resp.Status = cube.StatusBadSrc.String()
		resp.Error = fmt.Errorf("%w: %v", cube.ErrBadSrc, err).Error()
		writeJSON(w, resp)
		return
	}
	tgtCube, err := facelet.FromFacelets(target)
	if err != nil {
		resp.Status = cube.StatusBadTgt.String()
		resp.Error = fmt.Errorf("%w: %v", cube.ErrBadTgt, err).Error()
		writeJSON(w, resp)
		return
	}

	status, raw, err := cube.SolveRaw(srcCube, tgtCube, maxSteps, req.Best)
	resp.Status = status.String()
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, resp)
		return
	}
	moves := make([]cube.Move, len(raw))
	for i, m := range raw {
		moves[i] = cube.Move(m)
	}
	resp.Solution = maneuver.Format(moves)
	resp.Moves = raw
	resp.Steps = len(moves)
	writeJSON(w, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	start := req.Start
	if start == "" {
		start = facelet.Identity
	}

	moves, err := maneuver.Parse(req.Maneuver)
	if err != nil {
		writeJSON(w, ApplyResponse{Error: err.Error()})
		return
	}
	result, err := facelet.Apply(start, moves)
	if err != nil {
		writeJSON(w, ApplyResponse{Error: err.Error()})
		return
	}
	writeJSON(w, ApplyResponse{Facelets: result})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
