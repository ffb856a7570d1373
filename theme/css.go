package theme

import (
	"fmt"
	"strings"
)

// CSS renders the dashboard stylesheet. Everything is driven by the
// :root variables so the palette constants stay the single source of
// truth.
func CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	vars := []struct{ name, value string }{
		{"sidebar-bg", SidebarBg},
		{"sidebar-text", SidebarText},
		{"sidebar-text-muted", SidebarTextMuted},
		{"sidebar-border", SidebarBorder},
		{"bg-page", PageBg},
		{"bg-card", CardBg},
		{"bg-hover", HoverBg},
		{"bg-border", BorderColor},
		{"text-primary", TextPrimary},
		{"text-secondary", TextSecondary},
		{"text-tertiary", TextTertiary},
		{"positive", Positive},
		{"negative", Negative},
		{"warning", Warning},
		{"info", Info},
		{"accent", Accent},
		{"accent-light", AccentLight},
		{"radius-sm", "4px"},
		{"radius-md", "8px"},
		{"radius-lg", "12px"},
		{"transition", "0.15s ease"},
	}
	for _, v := range vars {
		fmt.Fprintf(&b, "    --%s: %s;\n", v.name, v.value)
	}
	b.WriteString("}\n")

	b.WriteString(`
body {
    background-color: var(--bg-page);
    color: var(--text-primary);
    font-family: system-ui, -apple-system, "Segoe UI", sans-serif;
    font-size: 16px;
    line-height: 1.6;
    margin: 0;
}

.sidebar {
    background-color: var(--sidebar-bg);
    border-right: 1px solid var(--sidebar-border);
    color: var(--sidebar-text);
    min-height: 100vh;
    padding: 1.5rem 1rem;
    width: 240px;
}

.sidebar a {
    color: var(--sidebar-text);
    display: block;
    padding: 0.4rem 0.6rem;
    border-radius: var(--radius-sm);
    text-decoration: none;
    transition: background-color var(--transition);
}

.sidebar a:hover {
    background-color: var(--sidebar-border);
}

.sidebar a.active {
    background-color: var(--accent);
    color: #ffffff;
}

.sidebar .muted {
    color: var(--sidebar-text-muted);
    font-size: 0.85rem;
}

.content {
    max-width: 1400px;
    padding: 1.5rem 2rem;
}

.card {
    background-color: var(--bg-card);
    border: 1px solid var(--bg-border);
    border-radius: var(--radius-md);
    padding: 1rem 1.25rem;
}

.card:hover {
    background-color: var(--bg-hover);
}

.metric-label {
    color: var(--text-tertiary);
    font-size: 0.8rem;
    text-transform: uppercase;
    letter-spacing: 0.05em;
}

.metric-value {
    font-size: 1.6rem;
    font-weight: 600;
}

.metric-delta.up { color: var(--positive); }
.metric-delta.down { color: var(--negative); }

.section-header {
    border-left: 3px solid var(--accent);
    color: var(--text-primary);
    font-size: 1.1rem;
    font-weight: 600;
    margin: 1.5rem 0 0.75rem;
    padding-left: 0.6rem;
}

table {
    border-collapse: collapse;
    width: 100%;
}

th {
    color: var(--text-tertiary);
    font-size: 0.8rem;
    text-align: left;
    text-transform: uppercase;
    border-bottom: 1px solid var(--bg-border);
    padding: 0.4rem 0.6rem;
}

td {
    border-bottom: 1px solid var(--bg-border);
    color: var(--text-secondary);
    padding: 0.4rem 0.6rem;
}

.badge {
    border-radius: var(--radius-sm);
    display: inline-block;
    font-size: 0.75rem;
    font-weight: 600;
    padding: 0.15rem 0.5rem;
}

.badge.ok { background-color: rgba(0, 132, 61, 0.12); color: var(--positive); }
.badge.warn { background-color: rgba(245, 158, 11, 0.15); color: var(--warning); }
.badge.breach { background-color: rgba(220, 38, 38, 0.12); color: var(--negative); }
`)

	return b.String()
}
