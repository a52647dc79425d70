package handler

import (
	"fmt"
	"net/http"

	"github.com/piratesearch/magnet-finder/consts"
)

func HandlerIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	info := consts.GetBuildInfo()
	fmt.Fprintf(w, `magnet-finder %s (%s)<br>
		GET /search?q=&lt;query&gt;&amp;cat=movies_hd|shows_hd|all_video&amp;res=4k|1080|any<br>
		GET /magnet?hash=&lt;info-hash&gt;&amp;dn=&lt;name&gt;<br>
		GET /details?url=&lt;detail page&gt;<br>
		`, info["version"], info["revision"])
}
