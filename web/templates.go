package web

import (
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Blackjack Monte Carlo Simulator</title>
<style>
body { font-family: sans-serif; margin: 24px; color: #111; }
form label { display: inline-block; width: 220px; }
form div { margin: 4px 0; }
.error { color: #c00; }
table td { padding: 2px 12px 2px 0; }
</style>
</head>
<body>
<h1>Blackjack Monte Carlo Simulator</h1>
<form method="post" action="/simulate">
<div><label for="initialBankroll">Initial Bankroll ($):</label><input id="initialBankroll" name="initialBankroll" value="{{.Form.InitialBankroll}}"></div>
<div><label for="betSize">Bet Size ($):</label><input id="betSize" name="betSize" value="{{.Form.BetSize}}"></div>
<div><label for="houseEdgePct">House Edge (%):</label><input id="houseEdgePct" name="houseEdgePct" value="{{.Form.HouseEdgePct}}"></div>
<div><label for="numHands">Number of Hands:</label><input id="numHands" name="numHands" value="{{.Form.NumHands}}"></div>
<div><label for="numPaths">Number of Simulated Players:</label><input id="numPaths" name="numPaths" value="{{.Form.NumPaths}}"></div>
<div><label for="stdDevPerHand">Std Dev per Hand ($, optional):</label><input id="stdDevPerHand" name="stdDevPerHand" value="{{.Form.StdDevPerHand}}"></div>
<div><button type="submit">Run Simulation</button></div>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Chart}}
<div class="chart">{{.Chart}}</div>
<table>
<tr><td>Run</td><td>{{.Summary.RunID}}</td></tr>
<tr><td>Bankrupt players</td><td>{{.Summary.BankruptCount}} / {{.Summary.Paths}} ({{.RuinPct}})</td></tr>
<tr><td>Mean final bankroll</td><td>{{.FinalMean}}</td></tr>
<tr><td>Median final bankroll</td><td>{{.FinalMedian}}</td></tr>
<tr><td>Std dev of final bankroll</td><td>{{.FinalStdDev}}</td></tr>
</table>
{{end}}
</body>
</html>
`))
