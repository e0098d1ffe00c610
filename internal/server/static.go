package server

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/ecowaste/site/web"
)

// newStaticFS returns the filesystem served under /static. Assets are
// embedded in the binary unless dir points at a directory on disk, which
// lets the CSS and JS be edited without a rebuild.
func newStaticFS(dir string) (fs.FS, error) {
	var afs afero.Fs
	if dir == "" {
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded static assets: %w", err)
		}
		afs = afero.FromIOFS{FS: sub}
	} else {
		osFs := afero.NewOsFs()
		ok, err := afero.DirExists(osFs, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat static dir %s: %w", dir, err)
		}
		if !ok {
			return nil, fmt.Errorf("static dir %s does not exist", dir)
		}
		afs = afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir))
	}
	return afero.NewIOFS(afs), nil
}
