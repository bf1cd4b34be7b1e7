package docs

import (
	"strings"

	"github.com/LeDeathAmongst/vrt-cogs/internal/version"
)

const indexHeader = `.. _main:

========
VRT Cogs
========

Documentation generated for the currently loaded cogs.

============
Useful Links
============

* ` + "`GitHub Repository <" + version.RepoURL + ">`_" + `

.. toctree::
    :caption: Repository
    :maxdepth: 2

    repo_installation
    repo_license
    repo_support
    repo_telemetry

.. toctree::
    :caption: Cogs documentations
    :maxdepth: 1

`

// GenerateIndex renders the index document: fixed front-matter sections
// followed by one toctree entry per processed cog.
func GenerateIndex(cogNames []string) string {
	var sb strings.Builder
	sb.WriteString(indexHeader)
	for _, name := range cogNames {
		sb.WriteString("    cog_" + name + "\n")
	}
	return sb.String()
}
