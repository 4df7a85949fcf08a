package letter

import "text/template"

const aiRiskBody = `Dear {{.MEPName}},

I hope this email finds you well. I am writing to express my concerns about the development of artificial intelligence and its potential impact on our society.

It has come to my attention that the leaders of the foremost AI companies and top experts in the field are currently warning about the risk of extinction from AI. Specifically, this risk stems from the development of what those in the field refer to as 'superintelligence'.

One such example is the CAIS open statement on AI risk which states, "Mitigating the risk of extinction from AI should be a global priority alongside other societal-scale risks such as pandemics and nuclear war." This statement is supported by both the CEOs of the field's leading AI companies and it's most preeminent experts, including Nobel Prize and Turing Award winners.

Given this information, I find it deeply concerning that several of the largest AI companies explicitly aim to develop superintelligence, despite the clear warnings from top experts in the field.

While I recognise the transformative benefits advanced AI technologies can bring, the creation of systems with intelligence far surpassing human capabilities carries irreversible and potentially catastrophic risks that cannot be ignored. We must approach this development with caution and responsibility.

I urge you to publicly call for new laws to protect us from the threat posed by the development of superintelligent AI systems. It is vital that our legislature takes a proactive approach in forming a coalition aimed at banning superintelligence and ensuring we remain in control of our future.

I would welcome the opportunity to provide any additional information that might be helpful in your consideration of this matter with either yourself or your office.

Thank you for your time and attention to this critical matter.

Yours sincerely,

{{.FirstName}} {{.LastName}}

{{.Country}}`

const whistleblowerBody = `Dear {{.MEPName}},

As the EU Parliament assesses strategies for mitigating risks associated with emerging technologies like artificial intelligence, I write in support of the AI Whistleblower Protection Act.

AI is reshaping society, defense capabilities, and global industries. With this transformation comes increasing potential for misuse, ethical lapses, and unintended consequences that could impact the public on a large scale. Ensuring transparency and accountability is both a public interest and national security imperative.

Employees and industry insiders have consistently been first to warn about technology risks. In Silicon Valley, engineers have exposed AI models released without proper safeguards, former staff have surfaced data on digital harms, and researchers have stepped forward when serious risks were ignored. Their disclosures gave the public and policymakers evidence needed to act.

However, without strong legal safeguards, individuals may be deterred from reporting issues due to fear of retaliation. In June 2024, over a dozen current and former employees from leading AI companies, including OpenAI and Google DeepMind, stated publicly that confidentiality agreements and fear of retaliation prevented them from raising legitimate safety concerns. This silences critical voices and undermines technological integrity.

Congress has the opportunity to protect individuals who come forward in good faith and reinforce that safety, ethics, and accountability must accompany innovation. In an age where AI systems influence everything from elections to defense systems, whistleblower protections are more urgent than ever.

The AI Whistleblower Protection Act ensures those developing AI systems are not punished for acting in the public interest. Strong whistleblower protections are essential to guiding AI development in a way that upholds our shared democratic values.

Thank you for your consideration.

Yours sincerely,

{{.FirstName}} {{.LastName}}

{{.Country}}`

type definition struct {
	subject string
	body    *template.Template
}

// Each template carries its own subject line.
var definitions = map[Template]definition{
	AIRisk: {
		subject: "Concerns about AI risks",
		body:    template.Must(template.New(string(AIRisk)).Option("missingkey=error").Parse(aiRiskBody)),
	},
	Whistleblower: {
		subject: "Support for AI Whistleblower Protection",
		body:    template.Must(template.New(string(Whistleblower)).Option("missingkey=error").Parse(whistleblowerBody)),
	},
}
