package page

import "slices"

var baseHeaders = []string{
	`<meta http-equiv="Content-Type" content="text/html; charset=utf-8" />`,
	`<link rel="stylesheet" type="text/css" href="/CTK/css/CTK.css" />`,
	`<script type="text/javascript" src="/CTK/js/common.js"></script>`,
	`<script type="text/javascript" src="/CTK/js/jquery-1.3.2.js"></script>`,
	`<script type="text/javascript" src="/CTK/js/Help.js"></script>`,
}

// BaseHeaders returns the boilerplate declarations every page starts with.
func BaseHeaders() []string {
	return slices.Clone(baseHeaders)
}
