package api

import (
	"net/http"
)

// Dashboard serves the single-page map UI. The page is self-contained: it
// pulls Leaflet from a CDN and drives the JSON API with plain fetch calls.
func Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(dashboardHTML))
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html><head><title>TOL Sales Potential and Market Share Insights</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
	body { margin:0; font-family:sans-serif; display:flex; }
	#panel { width:30%; padding:14px; box-sizing:border-box; overflow-y:auto; height:100vh; }
	#map { width:70%; height:100vh; }
	label { display:block; margin-top:10px; font-size:13px; font-weight:bold; }
	select { width:100%; margin-top:3px; }
	.range { display:flex; gap:6px; margin-top:3px; }
	.range input { width:50%; }
	h1 { font-size:16px; text-align:center; }
</style></head>
<body>
<div id="panel">
	<h1>TOL Sales Potential and Market Share Insights</h1>
	<label>Select Province:</label><select id="province"><option value="">All</option></select>
	<label>Select District:</label><select id="district"><option value="">All</option></select>
	<label>Select Sub-district:</label><select id="subdistrict"><option value="">All</option></select>
	<label>Select Happy Block:</label><select id="happy_block"><option value="">All</option></select>
	<label>Net Add Filter:</label>
	<div class="range"><input type="number" id="net_add_min"><input type="number" id="net_add_max"></div>
	<label>Potential Score Range:</label>
	<div class="range"><input type="number" id="score_min"><input type="number" id="score_max"></div>
	<label>Port Utilization Range:</label>
	<div class="range"><input type="number" id="utilization_min"><input type="number" id="utilization_max"></div>
	<label>Market Share True (%) Range:</label>
	<div class="range"><input type="number" id="market_share_min"><input type="number" id="market_share_max"></div>
</div>
<div id="map"></div>
<script>
var map = L.map('map', {attributionControl:false});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png').addTo(map);
var markers = L.layerGroup().addTo(map);
var meta = null;
var selects = ['province', 'district', 'subdistrict', 'happy_block'];
var ranges = ['net_add', 'score', 'utilization', 'market_share'];

function get(id) { return document.getElementById(id); }

function query() {
	var params = new URLSearchParams();
	selects.forEach(function(s) { if (get(s).value) params.set(s, get(s).value); });
	ranges.forEach(function(r) {
		if (get(r + '_min').value !== '') params.set(r + '_min', get(r + '_min').value);
		if (get(r + '_max').value !== '') params.set(r + '_max', get(r + '_max').value);
	});
	return params.toString();
}

function fillSelect(id, values) {
	var sel = get(id), current = sel.value;
	sel.innerHTML = '<option value="">All</option>';
	values.forEach(function(v) {
		var o = document.createElement('option');
		o.value = v; o.innerText = v;
		sel.appendChild(o);
	});
	sel.value = values.indexOf(current) >= 0 ? current : '';
}

function color(score) {
	var t = Math.max(0, Math.min(1, score / 100));
	return 'rgb(' + Math.round(255 * (1 - t)) + ',' + Math.round(128 * t + 60 * t) + ',0)';
}

function popup(row) {
	var lines = [
		['Province', row.province], ['District', row.district],
		['Sub-district', row.subdistrict], ['Happy Block', row.happy_block],
		['L2', row.l2], ['Port Use', row.port_use],
		['Port Available', row.port_available],
		['Market Share AIS (%)', row.market_share_ais],
		['Market Share 3BB (%)', row.market_share_3bb],
		['Market Share NT (%)', row.market_share_nt],
		['Market Share True (%)', row.market_share_true],
		['Install', row.install], ['Churn', row.churn],
		['% Churn', row.churn_percent], ['Net Add', row.net_add]
	];
	var html = '<b>' + row.subdistrict + '</b><br>Potential Score: ' + row.potential_score.toFixed(1);
	lines.forEach(function(l) { html += '<br>' + l[0] + ': ' + l[1]; });
	return html;
}

async function refreshOptions(changed) {
	if (changed === 'province') { get('district').value = ''; get('subdistrict').value = ''; get('happy_block').value = ''; }
	if (changed === 'district') { get('subdistrict').value = ''; get('happy_block').value = ''; }
	if (changed === 'subdistrict') { get('happy_block').value = ''; }
	var q = query();
	fillSelect('district', await (await fetch('/api/v1/options/districts?' + q)).json());
	fillSelect('subdistrict', await (await fetch('/api/v1/options/subdistricts?' + q)).json());
	fillSelect('happy_block', await (await fetch('/api/v1/options/happy-blocks?' + q)).json());
}

async function refreshMap() {
	var rows = await (await fetch('/api/v1/rows?' + query())).json();
	markers.clearLayers();
	rows.forEach(function(row) {
		L.circleMarker([row.latitude, row.longitude], {
			radius: 3 + Math.sqrt(row.household) / 4,
			color: color(row.potential_score),
			fillOpacity: 0.7
		}).bindPopup(popup(row)).addTo(markers);
	});
	if (rows.length > 0) map.setView([rows[0].latitude, rows[0].longitude], meta.map.zoom);
}

async function init() {
	meta = await (await fetch('/api/v1/meta')).json();
	ranges.forEach(function(r) {
		var key = {net_add:'net_add', score:'potential_score', utilization:'port_utilization', market_share:'market_share_true'}[r];
		get(r + '_min').value = meta.domains[key].min;
		get(r + '_max').value = meta.domains[key].max;
	});
	fillSelect('province', await (await fetch('/api/v1/options/provinces')).json());
	await refreshOptions('');
	selects.forEach(function(s) {
		get(s).addEventListener('change', async function() { await refreshOptions(s); await refreshMap(); });
	});
	ranges.forEach(function(r) {
		get(r + '_min').addEventListener('change', refreshMap);
		get(r + '_max').addEventListener('change', refreshMap);
	});
	await refreshMap();
}
init();
</script></body></html>`
