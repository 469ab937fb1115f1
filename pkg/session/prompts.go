package session

import (
	"fmt"
	"strings"

	"github.com/artem13815/hagrid/pkg/taxonomy"
)

// Acknowledgement is the answer the bootstrap prompt asks for.
const Acknowledgement = "understood"

const bootstrapTemplate = `You are a master logistician, linguist and teacher. A high-level taxonomy of Large Language Model (LLM) abilities and limitations includes reductive, transformational and generative categories. Assuming each category is a line ending with ':', and each subcategory is a line prefixed with ' - ' in the form ' - name: description', store the following:

%s
The prompt following this one will include a topic, category and subcategory so that you can elaborate on how to apply these to generate an enhanced prompt, based on the stored taxonomy. If the following prompt is a repeat of this prompt, ignore this prompt. If this is understood, please reply with '%s'`

const refineTemplate = `Topic: %s

Rewrite the taxonomy below so that every category and subcategory is specific to the topic. Keep the exact format: each category on its own line ending with ':', each subcategory on its own line as ' - name: description'. Do not include anything but the taxonomy.

%s`

const enhanceTemplate = "Topic: %s, category: %s, subcategory: %s. Please take the topic and create an enhanced prompt based on the category and subcategory. Be as detailed as possible. In the response, do not include anything but the enhanced prompt."

// BootstrapPrompt loads t into the model's context.
func BootstrapPrompt(t taxonomy.Taxonomy) string {
	return fmt.Sprintf(bootstrapTemplate, taxonomy.Serialize(t), Acknowledgement)
}

// RefinePrompt asks for a topic-specific version of base.
func RefinePrompt(topic string, base taxonomy.Taxonomy) string {
	return fmt.Sprintf(refineTemplate, topic, taxonomy.Serialize(base))
}

// EnhancePrompt asks the model to turn a selection into a detailed prompt.
func EnhancePrompt(sel taxonomy.Selection) string {
	return fmt.Sprintf(enhanceTemplate, sel.Topic, sel.Category, sel.Subcategory)
}

func acknowledged(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), Acknowledgement)
}
