// Package prompt menyusun prompt untuk generate pertanyaan interview,
// auto-fill form dari resume, dan evaluasi jawaban user.
package prompt

import (
	"fmt"

	"github.com/fadilmartias/mock-interview/internal/model"
)

// GenerateQuestions menghasilkan prompt untuk membuat 5 pasang
// pertanyaan + jawaban referensi sesuai tipe interview.
func GenerateQuestions(position, description string, experience int, techStack, interviewType, resume string) string {
	if resume == "" {
		resume = "Not provided"
	}
	return fmt.Sprintf(`As an experienced prompt engineer, generate a JSON array containing 5 %[5]s interview questions along with detailed answers based on the following job information. Each object in the array should have the fields "question" and "answer", formatted as follows:

[
  { "question": "<Question text>", "answer": "<Answer text>" },
  ...
]

Job Information:
- Job Position: %[1]s
- Job Description: %[2]s
- Years of Experience Required: %[3]d
- Tech Stacks: %[4]s
- Interview Type: %[5]s (Strictly adhere to this style)

Candidate Resume Context:
%[6]s

The questions should assess skills matches the interview type (%[5]s).
- If "Technical", focus on code, architecture, and problem solving.
- If "Behavioral", focus on soft skills, star method, and scenarios.
- If "HR", focus on culture fit, salary, and personality.

Please format the output strictly as an array of JSON objects without any additional labels, code blocks, or explanations. Return only the JSON array with questions and answers.`,
		position, description, experience, techStack, interviewType, resume)
}

// ResumeAutoFill menghasilkan prompt ekstraksi profil kerja dari teks resume.
func ResumeAutoFill(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume text and extract the candidate's likely Job Information.
Return a STRICT JSON object (no markdown, no code blocks) with the following fields:

{
  "position": "Job Title (e.g. Senior Frontend Engineer)",
  "description": "A brief professional summary based on the resume (2-3 sentences)",
  "experience": Number (Years of experience, strictly a number. If 0 or parsing fails, return 0),
  "techStack": "Comma separated string of key technologies found (e.g. React, Node.js, AWS)"
}

Resume Text:
%s`, resumeText)
}

const evaluationSchema = `{
  "ratings": number (1-10),
  "feedback": string (detailed critique),
  "followUpQuestion": string (optional, if needed),
  "confidence": number (1-10),
  "tone": string (one word adjective),
  "clarity": number (1-10)
}`

// EvaluateAnswer menghasilkan prompt evaluasi jawaban awal. Konteks resume
// hanya disertakan di ronde awal; evaluator diwajibkan mengajukan follow-up
// untuk jawaban pendek/samar.
func EvaluateAnswer(question model.Question, userAnswer, resumeContext string) string {
	resumeBlock := ""
	resumeField := ""
	if resumeContext != "" {
		resumeBlock = fmt.Sprintf("Resume Context: %s\n\nCRITICAL: Briefly verify if the answer aligns with the Resume claims. If they claimed expertise but gave a weak answer, mention it in 'resumeFeedback'.\n", resumeContext)
		resumeField = `,
  "resumeFeedback": string (Short verification comment, e.g. "Aligns with resume" or "Contradicts resume claims")`
	}
	return fmt.Sprintf(`Question: "%s"
Correct Answer Context: "%s"
User Answer: "%s"
%s
Evaluate technical correctness and soft skills.

If the answer is short, vague, or lacks specific examples, you MUST ask a "followUpQuestion".

Return strictly JSON in this format:
{
  "ratings": number (1-10),
  "feedback": string (detailed critique),
  "followUpQuestion": string (optional),
  "confidence": number (1-10),
  "tone": string,
  "clarity": number (1-10)%s
}`, question.Question, question.Answer, userAnswer, resumeBlock, resumeField)
}

// EvaluateFollowUp menghasilkan prompt evaluasi ronde follow-up. Jawaban
// referensi tidak dikirim; pertanyaan awal jadi konteks.
func EvaluateFollowUp(followUpQuestion, userAnswer, originalQuestion string) string {
	return fmt.Sprintf(`Question: "%s"
User Answer: "%s"
Context (Previous Question): "%s"

Evaluate this answer. Analyze confidence and tone.
Return strictly JSON in this format: %s`, followUpQuestion, userAnswer, originalQuestion, evaluationSchema)
}
