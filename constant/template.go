// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Catalog Function Identifier - the required global function signature for Lua catalog modules.
const (
	CatalogLessonsFn = "CatalogLessons"
)

// CatalogTemplate is a Go text/template for scaffolding new Lua catalog files.
const CatalogTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias lesson { id: string, title: string, video: string, link: string, summary: string|nil, tags: string|nil }


----- MAIN -----

--- Returns the full list of lessons provided by this catalog.
-- Each lesson needs a stable id, a YouTube video id and a resource link URL.
-- @return lesson[] Table of lessons
function {{ .CatalogLessonsFn }}()
	return {}
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
