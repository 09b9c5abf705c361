package rules

import "strings"

const (
	richTitle       = "A Simple Content Strategy Guide for Busy Teams"
	richDescription = "Learn how to build a content strategy that answers real questions, keeps every page easy to read and helps each article earn its place in search."
)

var plainParagraph = strings.Join([]string{
	"Start with the one question your reader wants to ask.",
	"Write short lines and keep each point easy to find.",
	"Use plain words that most people know and use daily.",
	"Add a list when the steps need a clear order.",
	"Link to other pages that help the reader go further.",
	"Check the page on a phone before you publish it.",
	"Test the title and see which one gets more clicks.",
	"Read the text out loud to hear where it drags.",
}, " ")

// richPage passes every rule of the default catalog for the keyword "content strategy"
var richPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="robots" content="index, follow">
  <meta name="description" content="` + richDescription + `">
  <meta property="og:title" content="` + richTitle + `">
  <meta property="og:description" content="` + richDescription + `">
  <meta property="og:image" content="https://example.com/cover.png">
  <meta property="article:published_time" content="2024-05-01T08:00:00Z">
  <link rel="canonical" href="https://example.com/content-strategy">
  <title>` + richTitle + `</title>
  <script type="application/ld+json">{"@context":"https://schema.org","@type":"Article"}</script>
</head>
<body>
  <header><nav><a href="/">Home</a> <a href="/blog/">Blog</a></nav></header>
  <main>
    <article>
      <h1>A simple content strategy guide</h1>
      <p>A good content strategy starts with the reader. ` + plainParagraph + `</p>
      <img src="/diagram.png" alt="Content strategy diagram">
      <h2>Know your reader</h2>
      <p>` + plainParagraph + `</p>
      <h2>Write for people</h2>
      <p>` + plainParagraph + ` See the <a href="https://developers.google.com/search/docs">Google search guide</a> for more.</p>
      <h2>Check your work</h2>
      <p>` + plainParagraph + `</p>
    </article>
  </main>
  <footer>Written by the editorial team.</footer>
</body>
</html>`
