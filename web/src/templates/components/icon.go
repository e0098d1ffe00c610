package components

import (
	cmp "maragu.dev/gomponents"
)

// iconPaths holds stroke paths on a 24x24 grid, lucide style.
var iconPaths = map[string][]string{
	"recycle":      {"M7 19H4.8a1.8 1.8 0 0 1-1.6-2.7L7 10", "M11 19h8.2a1.8 1.8 0 0 0 1.6-2.7l-1.2-2", "M14 16l-3 3 3 3", "M8.3 13.6L7 10l-3.6 1.3", "M9.3 5.8l1.2-2a1.8 1.8 0 0 1 3 0L17.3 10", "M13.4 10.6L17.3 10l1.3-3.6"},
	"leaf":         {"M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.5 19 2c1 2 2 4.2 2 8 0 5.5-4.8 10-10 10Z", "M2 21c0-3 1.9-5.4 5.2-6"},
	"bar-chart":    {"M3 3v18h18", "M18 17V9", "M13 17V5", "M8 17v-3"},
	"pie-chart":    {"M21.2 15.9A10 10 0 1 1 8 2.8", "M22 12A10 10 0 0 0 12 2v10z"},
	"trending-up":  {"M22 7l-8.5 8.5-5-5L2 17", "M16 7h6v6"},
	"trash":        {"M3 6h18", "M19 6v14a2 2 0 0 1-2 2H7a2 2 0 0 1-2-2V6", "M8 6V4a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v2"},
	"target":       {"M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20", "M12 6a6 6 0 1 0 0 12 6 6 0 1 0 0-12", "M12 10a2 2 0 1 0 0 4 2 2 0 1 0 0-4"},
	"shield":       {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	"award":        {"M12 2a6 6 0 1 0 0 12 6 6 0 1 0 0-12", "M15.5 12.9L17 22l-5-3-5 3 1.5-9.1"},
	"users":        {"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2", "M9 3a4 4 0 1 0 0 8 4 4 0 1 0 0-8", "M22 21v-2a4 4 0 0 0-3-3.9", "M16 3.1a4 4 0 0 1 0 7.8"},
	"globe":        {"M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20", "M2 12h20", "M12 2a15 15 0 0 1 4 10 15 15 0 0 1-4 10 15 15 0 0 1-4-10 15 15 0 0 1 4-10z"},
	"calendar":     {"M5 4h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z", "M16 2v4", "M8 2v4", "M3 10h18"},
	"filter":       {"M22 3H2l8 9.5V19l4 2v-8.5L22 3z"},
	"download":     {"M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4", "M7 10l5 5 5-5", "M12 15V3"},
	"map":          {"M1 6v16l7-4 8 4 7-4V2l-7 4-8-4-7 4z", "M8 2v16", "M16 6v16"},
	"user":         {"M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2", "M12 3a4 4 0 1 0 0 8 4 4 0 1 0 0-8"},
	"mail":         {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z", "M22 6l-10 7L2 6"},
	"check":        {"M20 6L9 17l-5-5"},
	"check-circle": {"M22 11.1V12a10 10 0 1 1-5.9-9.1", "M22 4L12 14l-3-3"},
	"arrow-left":   {"M19 12H5", "M12 19l-7-7 7-7"},
	"eye":          {"M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7z", "M12 9a3 3 0 1 0 0 6 3 3 0 1 0 0-6"},
}

// Icon renders a named stroke icon. Unknown names render an empty box of the
// same size so layouts do not shift.
func Icon(name, class string) cmp.Node {
	var paths []cmp.Node
	for _, d := range iconPaths[name] {
		paths = append(paths, cmp.El("path", cmp.Attr("d", d)))
	}
	return cmp.El("svg",
		cmp.Attr("xmlns", "http://www.w3.org/2000/svg"),
		cmp.Attr("viewBox", "0 0 24 24"),
		cmp.Attr("fill", "none"),
		cmp.Attr("stroke", "currentColor"),
		cmp.Attr("stroke-width", "2"),
		cmp.Attr("stroke-linecap", "round"),
		cmp.Attr("stroke-linejoin", "round"),
		cmp.Attr("aria-hidden", "true"),
		cmp.Attr("class", class),
		cmp.Group(paths),
	)
}

// IconBadge is an icon centered on the brand gradient tile.
func IconBadge(name, size, iconSize string) cmp.Node {
	return cmp.El("div",
		cmp.Attr("class", size+" bg-gradient-to-br from-primary to-primary-glow rounded-xl flex items-center justify-center"),
		Icon(name, iconSize+" text-primary-foreground"),
	)
}
