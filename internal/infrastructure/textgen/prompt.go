package textgen

const systemPrompt = "You are a professional smart home project manager writing project descriptions."
