package llmtoc

// extractionPrompt instructs the model to transcribe the TOC pages into the
// chapters JSON structure the splitting engine consumes.
const extractionPrompt = `You are given the text of a book's table-of-contents pages.
Transcribe the table of contents into JSON with this exact structure:

{
  "chapters": [
    {
      "title": "Chapter title as printed",
      "number": "1",
      "page": 1,
      "subtopics": [
        {"title": "Section title", "number": "1.1", "page": 3, "subtopics": []}
      ]
    }
  ]
}

Rules:
- Preserve the printed order of entries; nesting follows the visual hierarchy.
- "page" is the 1-based page number printed next to the entry. Omit "page"
  for entries printed without one.
- If entries carry printed numbers, use them; otherwise synthesize decimal
  numbers (1, 1.1, 1.2, 2, ...) from their order.
- Respond with JSON only. No commentary, no markdown fences.`
