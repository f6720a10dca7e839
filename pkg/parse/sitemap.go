package parse

import (
	"encoding/xml"
	"fmt"

	"seo-audit/pkg/utils"
)

type sitemapEntry struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name       `xml:"urlset"`
	URLs    []sitemapEntry `xml:"url"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

// CountSitemapURLs counts the <loc> entries in a sitemap document
// Both plain urlsets and sitemap index files are accepted; index files
// are not recursed into, their <loc> entries are counted as-is
func CountSitemapURLs(content []byte) (int, error) {
	var set urlSet
	if err := xml.Unmarshal(content, &set); err == nil && set.XMLName.Local == "urlset" {
		return len(set.URLs), nil
	}

	var index sitemapIndex
	if err := xml.Unmarshal(content, &index); err == nil && index.XMLName.Local == "sitemapindex" {
		return len(index.Sitemaps), nil
	}

	return 0, fmt.Errorf("%w: XML is neither a urlset nor a sitemapindex", utils.ErrParsing)
}
