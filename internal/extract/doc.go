// Package extract pulls readable text out of web pages, images and PDF
// documents, either remotely through Gemini or locally with readability.
package extract
