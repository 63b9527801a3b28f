package server

import "html/template"

type playerPage struct {
	Player string
	Source string
}

var playerTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Rutube iframe</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: 'Inter', sans-serif;
      background: linear-gradient(135deg, #667eea, #764ba2);
      color: #f0f0f0;
      display: flex;
      flex-direction: column;
      align-items: center;
      min-height: 100vh;
      padding: 40px 20px;
    }
    h3 { font-weight: 600; margin-bottom: 20px; text-shadow: 0 2px 6px rgba(0,0,0,0.3); }
    .iframe-container {
      box-shadow: 0 8px 24px rgba(0,0,0,0.4);
      border-radius: 12px;
      overflow: hidden;
      width: 90%;
      max-width: 800px;
    }
    iframe { width: 100%; height: 450px; border: none; display: block; }
    p { margin-top: 20px; font-size: 1rem; text-align: center; }
    p a { color: #ffd369; text-decoration: none; font-weight: 600; }
    p a:hover { color: #ffb347; text-decoration: underline; }
    @media (max-width: 600px) { iframe { height: 280px; } }
  </style>
</head>
<body>
  <h3>Rutube iframe:</h3>
  <div class="iframe-container">
    <iframe src="{{ .Player }}" allowfullscreen></iframe>
  </div>
  <p>Video: <a href="{{ .Source }}" target="_blank" rel="noopener noreferrer">{{ .Source }}</a></p>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<h1>Error: {{ . }}</h1>`))
